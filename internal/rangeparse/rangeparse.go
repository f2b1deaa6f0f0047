// Package rangeparse reads the textual range notation used on the command line
// and in range list files.
//
// A range is either a single integer "N" or a pair "N-M", where both bounds
// may be negative. A leading '-' always belongs to the first number and the
// separator is the first '-' after a digit, so "-50--10" reads as
// [-50, -10]. A list is a comma separated sequence of ranges; blank input is
// the empty list.
package rangeparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/garethgeorge/rangecalc/internal/intrange"
)

// ParseRange parses a single range.
func ParseRange(s string) (intrange.Range, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return intrange.Range{}, fmt.Errorf("%w: empty range", ErrSyntax)
	}

	sep := separatorIndex(text)
	if sep < 0 {
		v, err := parseBound(text)
		if err != nil {
			return intrange.Range{}, err
		}
		return intrange.Point(v), nil
	}

	start, err := parseBound(text[:sep])
	if err != nil {
		return intrange.Range{}, err
	}
	end, err := parseBound(text[sep+1:])
	if err != nil {
		return intrange.Range{}, err
	}
	r, err := intrange.New(start, end)
	if err != nil {
		return intrange.Range{}, fmt.Errorf("%q: %w", text, err)
	}
	return r, nil
}

// Parse parses a comma separated list of ranges in the order given.
func Parse(list string) ([]intrange.Range, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	items := strings.Split(list, ",")
	ranges := make([]intrange.Range, 0, len(items))
	for i, item := range items {
		r, err := ParseRange(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Validate reports whether list parses.
func Validate(list string) bool {
	_, err := Parse(list)
	return err == nil
}

// separatorIndex returns the index of the first '-' preceded by a digit, or -1 for a single number.
func separatorIndex(text string) int {
	seenDigit := false
	for i := 0; i < len(text); i++ {
		switch {
		case isDigit(text[i]):
			seenDigit = true
		case text[i] == '-' && seenDigit:
			return i
		}
	}
	return -1
}

func parseBound(s string) (int64, error) {
	text := strings.TrimSpace(s)
	digits := strings.TrimPrefix(text, "-")
	if digits == "" {
		return 0, fmt.Errorf("%w: missing number in %q", ErrSyntax, s)
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return 0, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, digits[i], s)
		}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrOverflow, text)
	} else if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
