// Package inputfile opens range list files. Paths ending in ".zst" are
// zstd compressed and "-" stands for stdin or stdout.
package inputfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/garethgeorge/rangecalc/internal/rangeparse"
	"github.com/klauspost/compress/zstd"
)

const (
	Stdio       = "-"
	zstdSuffix  = ".zst"
	bufferBytes = 64 * 1024
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func IsCompressed(path string) bool {
	return strings.HasSuffix(path, zstdSuffix)
}

// Open returns a reader over the decompressed contents of path.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}
	zstdReader, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open zstd stream %s: %w", path, err)
	}
	return &readerCloseForwarder{
		closers: []func() error{func() error {
			zstdReader.Close()
			return nil
		}, f.Close},
		Reader: bufio.NewReaderSize(zstdReader, bufferBytes),
	}, nil
}

// Create returns a writer that stores its input at path, compressing it for ".zst" paths.
// The file is complete only once the writer is closed.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return &writerCloseForwarder{Writer: stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	bufioWriter := bufio.NewWriterSize(f, bufferBytes)
	if !IsCompressed(path) {
		return &writerCloseForwarder{
			closers: []func() error{bufioWriter.Flush, f.Close},
			Writer:  bufioWriter,
		}, nil
	}
	zstdWriter, err := zstd.NewWriter(
		bufioWriter,
		zstd.WithEncoderCRC(true),
		zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create zstd stream %s: %w", path, err)
	}
	return &writerCloseForwarder{
		closers: []func() error{zstdWriter.Close, bufioWriter.Flush, f.Close},
		Writer:  zstdWriter,
	}, nil
}

// ReadRangeList reads ranges from r. Each line holds a comma separated range
// list; blank lines and text after '#' are ignored.
func ReadRangeList(r io.Reader) ([]intrange.Range, error) {
	var ranges []intrange.Range
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufferBytes), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		parsed, err := rangeparse.Parse(strings.TrimSuffix(strings.TrimSpace(text), ","))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ranges = append(ranges, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ranges, nil
}

// LoadRangeList opens path and reads a range list from it.
func LoadRangeList(path string) ([]intrange.Range, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ranges, err := ReadRangeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ranges, nil
}
