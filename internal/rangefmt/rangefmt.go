package rangefmt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/garethgeorge/rangecalc/internal/intrange"
	"github.com/mattn/go-isatty"
)

// None is printed in place of an empty range set.
const None = "(none)"

const DefaultSeparator = ", "

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q, want auto, always or never", s)
	}
}

// Enabled resolves the mode for output written to w.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type Formatter struct {
	Color     bool
	Separator string

	rangeColor *color.Color
	noneColor  *color.Color
}

func NewFormatter(colored bool, separator string) *Formatter {
	if separator == "" {
		separator = DefaultSeparator
	}
	f := &Formatter{
		Color:      colored,
		Separator:  separator,
		rangeColor: color.New(color.FgGreen),
		noneColor:  color.New(color.FgYellow, color.Faint),
	}
	if colored {
		f.rangeColor.EnableColor()
		f.noneColor.EnableColor()
	} else {
		f.rangeColor.DisableColor()
		f.noneColor.DisableColor()
	}
	return f
}

// Format renders ranges joined by the separator, or None when there are none.
func (f *Formatter) Format(ranges []intrange.Range) string {
	if len(ranges) == 0 {
		return f.noneColor.Sprint(None)
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = f.rangeColor.Sprint(r.String())
	}
	return strings.Join(parts, f.Separator)
}

var plain = NewFormatter(false, DefaultSeparator)

// Format renders ranges without color using the default separator.
func Format(ranges []intrange.Range) string {
	return plain.Format(ranges)
}
