package mock

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/pixelcolor"
)

// ErrPatternTooLarge is returned when a pattern does not fit the display.
var ErrPatternTooLarge = errors.New("mock: pattern larger than display")

// rgbChars maps pattern characters to the named colors used for RGB
// types.
var rgbChars = []struct {
	ch  rune
	rgb pixelcolor.Rgb888
}{
	{'K', pixelcolor.NewRgb888(0, 0, 0)},
	{'R', pixelcolor.NewRgb888(255, 0, 0)},
	{'G', pixelcolor.NewRgb888(0, 255, 0)},
	{'B', pixelcolor.NewRgb888(0, 0, 255)},
	{'Y', pixelcolor.NewRgb888(255, 255, 0)},
	{'M', pixelcolor.NewRgb888(255, 0, 255)},
	{'C', pixelcolor.NewRgb888(0, 255, 255)},
	{'W', pixelcolor.NewRgb888(255, 255, 255)},
}

const hexDigits = "0123456789ABCDEF"

// charColor parses a pattern character for color type C.
func charColor[C pixelcolor.Color](ch rune) (C, bool) {
	var zero C
	switch any(zero).(type) {
	case pixelcolor.BinaryColor:
		switch ch {
		case '.':
			return pixelcolor.FromRawBits[C](0), true
		case '#':
			return pixelcolor.FromRawBits[C](1), true
		}
		return zero, false
	case pixelcolor.Gray2, pixelcolor.Gray4, pixelcolor.Gray8:
		v := strings.IndexRune(hexDigits, ch)
		if v < 0 || v >= 1<<zero.BitsPerPixel() {
			return zero, false
		}
		return pixelcolor.FromRawBits[C](uint32(v)), true
	}
	for _, e := range rgbChars {
		if e.ch == ch {
			return pixelcolor.Convert[C](e.rgb), true
		}
	}
	return zero, false
}

// colorChar is the inverse of charColor. Colors without a character are
// rendered as '?'.
func colorChar[C pixelcolor.Color](c C) rune {
	switch v := any(c).(type) {
	case pixelcolor.BinaryColor:
		if v.IsOn() {
			return '#'
		}
		return '.'
	case pixelcolor.Gray2, pixelcolor.Gray4, pixelcolor.Gray8:
		if c.RawBits() < uint32(len(hexDigits)) {
			return rune(hexDigits[c.RawBits()])
		}
		return '?'
	}
	for _, e := range rgbChars {
		if pixelcolor.Convert[C](e.rgb).RawBits() == c.RawBits() {
			return e.ch
		}
	}
	return '?'
}

// FromPattern creates a display from a text pattern. Spaces leave pixels
// undrawn.
func FromPattern[C pixelcolor.Color](pattern []string) (*MockDisplay[C], error) {
	if len(pattern) > Size {
		return nil, ErrPatternTooLarge
	}
	d := New[C]()
	for y, row := range pattern {
		x := 0
		for _, ch := range row {
			if x >= Size {
				return nil, ErrPatternTooLarge
			}
			if ch != ' ' {
				c, ok := charColor[C](ch)
				if !ok {
					return nil, fmt.Errorf("mock: invalid pattern character %q at (%d, %d)", ch, x, y)
				}
				d.SetPixel(geometry.Pt(int32(x), int32(y)), c)
			}
			x++
		}
	}
	return d, nil
}

// MustFromPattern is like FromPattern but panics on error.
func MustFromPattern[C pixelcolor.Color](pattern []string) *MockDisplay[C] {
	d, err := FromPattern[C](pattern)
	if err != nil {
		panic(err)
	}
	return d
}

// AssertEqual fails the test when the displays differ.
func (d *MockDisplay[C]) AssertEqual(t testing.TB, want *MockDisplay[C]) {
	t.Helper()
	if d.Equal(want) {
		return
	}
	t.Errorf("display mismatch\ngot:\n%s\nwant:\n%s\ndiff (G only in got, R only in want, B different):\n%s",
		frame(d.Pattern()), frame(want.Pattern()), frame(d.Diff(want).Pattern()))
}

// AssertPattern fails the test when the display does not match pattern.
func (d *MockDisplay[C]) AssertPattern(t testing.TB, pattern []string) {
	t.Helper()
	want, err := FromPattern[C](pattern)
	if err != nil {
		t.Fatalf("FromPattern() error = %v", err)
	}
	d.AssertEqual(t, want)
}

func frame(rows []string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "|%-*s|\n", width, r)
	}
	return b.String()
}
