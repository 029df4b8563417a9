package text

import (
	"errors"
	"iter"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/tinygfx/bitmap"
	"github.com/gogpu/tinygfx/draw"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/mock"
	"github.com/gogpu/tinygfx/pixelcolor"
)

type bin = pixelcolor.BinaryColor

var _ CharacterStyle[bin] = MonoTextStyle[bin]{}

// testGlyphs are the 3x3 glyphs of testFont: 'a', 'b', 'c' and '?'.
var testGlyphs = [][]string{
	{"###", "#.#", "###"},
	{"#..", "##.", "###"},
	{".#.", "#.#", ".#."},
	{"###", "..#", ".#."},
}

func testFont(t *testing.T) *MonoFont {
	t.Helper()
	mapping, err := NewStrGlyphMapping("\x00ac?", 3)
	if err != nil {
		t.Fatalf("NewStrGlyphMapping() error = %v", err)
	}
	size := geometry.NewSize(12, 3)
	data := bitmap.Pack(size, bitmap.BigEndian, func(p geometry.Point) bin {
		g := testGlyphs[p.X/3]
		return pixelcolor.BinaryFromBool(g[p.Y][p.X%3] == '#')
	})
	return &MonoFont{
		Image:            bitmap.NewRaw[bin](data, size.Width),
		CharacterSize:    geometry.NewSize(3, 3),
		CharacterSpacing: 1,
		Baseline:         2,
		Underline:        DecorationDimensions{Offset: 3, Height: 1},
		Strikethrough:    DecorationDimensions{Offset: 1, Height: 1},
		GlyphMapping:     mapping,
	}
}

func TestStrGlyphMapping(t *testing.T) {
	m, err := NewStrGlyphMapping("\x00az!", 26)
	if err != nil {
		t.Fatalf("NewStrGlyphMapping() error = %v", err)
	}
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 0}, {'m', 12}, {'z', 25}, {'!', 26}, {'A', 26},
	}
	for _, tt := range tests {
		if got := m.Index(tt.r); got != tt.want {
			t.Errorf("Index(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
	for _, bad := range []string{"\x00a", "\x00za"} {
		if _, err := NewStrGlyphMapping(bad, 0); !errors.Is(err, ErrInvalidMapping) {
			t.Errorf("NewStrGlyphMapping(%q) error = %v, want %v", bad, err, ErrInvalidMapping)
		}
	}
}

func TestCharmapGlyphMapping(t *testing.T) {
	m := NewCharmapGlyphMapping(charmap.ISO8859_1, 0x20, 224, 31)
	tests := []struct {
		r    rune
		want int
	}{
		{' ', 0}, {'A', 0x21}, {'é', 0xe9 - 0x20}, {'€', 31}, {'\n', 31},
	}
	for _, tt := range tests {
		if got := m.Index(tt.r); got != tt.want {
			t.Errorf("Index(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestDrawString(t *testing.T) {
	f := testFont(t)
	tests := []struct {
		name  string
		style MonoTextStyle[bin]
		want  []string
	}{
		{"text only", NewMonoTextStyle(f, pixelcolor.BinaryOn), []string{
			" ### #",
			" # # ##",
			" ### ###",
		}},
		{"with background", NewMonoTextStyleBuilder[bin](f).
			TextColor(pixelcolor.BinaryOn).
			BackgroundColor(pixelcolor.BinaryOff).
			Build(), []string{
			" ###.#..",
			" #.#.##.",
			" ###.###",
		}},
		{"underline", NewMonoTextStyle(f, pixelcolor.BinaryOn).Builder().
			Underline(DecorationTextColor[bin]()).
			Build(), []string{
			" ### #",
			" # # ##",
			" ### ###",
			" #######",
		}},
		{"background only", NewMonoTextStyleBuilder[bin](f).
			BackgroundColor(pixelcolor.BinaryOn).
			Build(), []string{
			" #######",
			" #######",
			" #######",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mock.New[bin]()
			next, err := tt.style.DrawString("ab", geometry.Pt(1, 2), BaselineAlphabetic, d)
			if err != nil {
				t.Fatalf("DrawString() error = %v", err)
			}
			if want := geometry.Pt(9, 2); next != want {
				t.Errorf("DrawString() = %v, want %v", next, want)
			}
			d.AssertPattern(t, tt.want)
		})
	}
}

func TestDrawStringStrikethroughOverwrites(t *testing.T) {
	f := testFont(t)
	d := mock.New[bin](mock.WithAllowOverdraw())
	style := NewMonoTextStyle(f, pixelcolor.BinaryOn).Builder().
		BackgroundColor(pixelcolor.BinaryOff).
		Strikethrough(DecorationCustom(pixelcolor.BinaryOn)).
		Build()
	if _, err := style.DrawString("c", geometry.Zero(), BaselineTop, d); err != nil {
		t.Fatalf("DrawString() error = %v", err)
	}
	d.AssertPattern(t, []string{
		".#.",
		"###",
		".#.",
	})
}

func TestReplacementGlyph(t *testing.T) {
	f := testFont(t)
	d := mock.New[bin]()
	if _, err := NewMonoTextStyle(f, pixelcolor.BinaryOn).DrawString("x", geometry.Zero(), BaselineTop, d); err != nil {
		t.Fatalf("DrawString() error = %v", err)
	}
	d.AssertPattern(t, []string{
		"###",
		"  #",
		" #",
	})
}

func TestMeasureString(t *testing.T) {
	f := testFont(t)
	style := NewMonoTextStyle(f, pixelcolor.BinaryOn)
	tests := []struct {
		name     string
		text     string
		baseline Baseline
		style    MonoTextStyle[bin]
		box      geometry.Rectangle
		next     geometry.Point
	}{
		{"top", "abc", BaselineTop, style, geometry.Rect(0, 0, 11, 3), geometry.Pt(12, 0)},
		{"alphabetic", "a", BaselineAlphabetic, style, geometry.Rect(0, -2, 3, 3), geometry.Pt(4, 0)},
		{"bottom", "a", BaselineBottom, style, geometry.Rect(0, -2, 3, 3), geometry.Pt(4, 0)},
		{"middle", "a", BaselineMiddle, style, geometry.Rect(0, -1, 3, 3), geometry.Pt(4, 0)},
		{"empty", "", BaselineTop, style, geometry.Rect(0, 0, 0, 0), geometry.Pt(0, 0)},
		{"underline", "ab", BaselineTop, style.Builder().Underline(DecorationTextColor[bin]()).Build(),
			geometry.Rect(0, 0, 7, 4), geometry.Pt(8, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.style.MeasureString(tt.text, geometry.Zero(), tt.baseline)
			if m.BoundingBox != tt.box {
				t.Errorf("MeasureString().BoundingBox = %v, want %v", m.BoundingBox, tt.box)
			}
			if m.NextPosition != tt.next {
				t.Errorf("MeasureString().NextPosition = %v, want %v", m.NextPosition, tt.next)
			}
		})
	}
}

func TestDrawWhitespace(t *testing.T) {
	f := testFont(t)
	style := NewMonoTextStyleBuilder[bin](f).
		BackgroundColor(pixelcolor.BinaryOff).
		Underline(DecorationCustom(pixelcolor.BinaryOn)).
		Build()
	d := mock.New[bin]()
	next, err := style.DrawWhitespace(4, geometry.Pt(0, 2), BaselineAlphabetic, d)
	if err != nil {
		t.Fatalf("DrawWhitespace() error = %v", err)
	}
	if want := geometry.Pt(4, 2); next != want {
		t.Errorf("DrawWhitespace() = %v, want %v", next, want)
	}
	d.AssertPattern(t, []string{
		"....",
		"....",
		"....",
		"####",
	})
}

func TestTextAlignment(t *testing.T) {
	f := testFont(t)
	style := NewMonoTextStyle(f, pixelcolor.BinaryOn)
	tests := []struct {
		align Alignment
		lh    LineHeight
		box   geometry.Rectangle
	}{
		{AlignLeft, LineHeight{}, geometry.Rect(20, 10, 7, 6)},
		{AlignCenter, LineHeight{}, geometry.Rect(17, 10, 7, 6)},
		{AlignRight, LineHeight{}, geometry.Rect(14, 10, 7, 6)},
		{AlignLeft, LineHeightPixels(5), geometry.Rect(20, 10, 7, 8)},
		{AlignLeft, LineHeightPercent(200), geometry.Rect(20, 10, 7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.align.String()+"/"+tt.lh.String(), func(t *testing.T) {
			txt := NewTextWithStyle[bin]("ab\nc", geometry.Pt(20, 10), style, TextStyle{
				Alignment:  tt.align,
				Baseline:   BaselineTop,
				LineHeight: tt.lh,
			})
			if got := txt.BoundingBox(); got != tt.box {
				t.Errorf("BoundingBox() = %v, want %v", got, tt.box)
			}
			d := mock.New[bin]()
			if err := txt.Draw(d); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			if got := d.AffectedArea(); !tt.box.Contains(got.TopLeft) {
				t.Errorf("AffectedArea() = %v, outside %v", got, tt.box)
			}
		})
	}
}

func TestTextLinePositions(t *testing.T) {
	f := testFont(t)
	txt := NewTextWithStyle[bin]("a\nc", geometry.Pt(2, 0), NewMonoTextStyle(f, pixelcolor.BinaryOn),
		NewTextStyle(AlignRight, BaselineTop))
	d := mock.New[bin]()
	if err := txt.Draw(d); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	d.AssertPattern(t, []string{
		"###",
		"# #",
		"###",
		" # ",
		"# #",
		" #",
	})
}

func TestEmptyText(t *testing.T) {
	txt := NewText[bin]("", geometry.Pt(3, 4), NewMonoTextStyle(testFont(t), pixelcolor.BinaryOn))
	if got, want := txt.BoundingBox(), (geometry.Rectangle{TopLeft: geometry.Pt(3, 4)}); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
	d := mock.New[bin]()
	if err := txt.Draw(d); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := len(d.DrawnPoints()); n != 0 {
		t.Errorf("drawn pixels = %d, want 0", n)
	}
}

func TestTextDrawError(t *testing.T) {
	txt := NewText[bin]("abc", geometry.Pt(62, 2), NewMonoTextStyle(testFont(t), pixelcolor.BinaryOn))
	var oob *mock.OutOfBoundsError
	if err := txt.Draw(mock.New[bin]()); !errors.As(err, &oob) {
		t.Errorf("Draw() error = %v, want *mock.OutOfBoundsError", err)
	}
}

func TestFromBasicFont(t *testing.T) {
	f := Font7x13
	if got, want := f.CharacterSize, geometry.NewSize(6, 13); got != want {
		t.Errorf("CharacterSize = %v, want %v", got, want)
	}
	if f.CharacterSpacing != 1 {
		t.Errorf("CharacterSpacing = %d, want 1", f.CharacterSpacing)
	}
	if got := f.GlyphMapping.Index('A'); got != 'A'-' ' {
		t.Errorf("Index('A') = %d, want %d", got, 'A'-' ')
	}
	if got, want := f.GlyphMapping.Index('\x01'), f.GlyphMapping.Index('\ufffd'); got != want {
		t.Errorf("Index('\\x01') = %d, want replacement %d", got, want)
	}
	m := f.Metrics()
	if m.Ascent != fixed.I(basicfont.Face7x13.Ascent) || m.Height != fixed.I(13) {
		t.Errorf("Metrics() = %+v, want ascent %d height 13", m, basicfont.Face7x13.Ascent)
	}

	d := mock.New[bin]()
	style := NewMonoTextStyle(f, pixelcolor.BinaryOn)
	if _, err := style.DrawString("A", geometry.Pt(0, 0), BaselineTop, d); err != nil {
		t.Fatalf("DrawString() error = %v", err)
	}
	area := d.AffectedArea()
	if area.IsZeroSized() || !geometry.Rect(0, 0, 6, 13).Contains(area.TopLeft) {
		t.Errorf("AffectedArea() = %v, want pixels inside the first cell", area)
	}
	space := mock.New[bin]()
	if _, err := style.DrawString(" ", geometry.Zero(), BaselineTop, space); err != nil {
		t.Fatalf("DrawString() error = %v", err)
	}
	if n := len(space.DrawnPoints()); n != 0 {
		t.Errorf("space drew %d pixels, want 0", n)
	}
}

func TestFromBasicFontEmpty(t *testing.T) {
	if _, err := FromBasicFont(&basicfont.Face{Width: 6, Ascent: 11, Descent: 2}); !errors.Is(err, ErrNoGlyphs) {
		t.Errorf("FromBasicFont() error = %v, want %v", err, ErrNoGlyphs)
	}
}

func TestGlyphTargetForwardsErrors(t *testing.T) {
	errStop := errors.New("stop")
	target := failing{err: errStop}
	style := NewMonoTextStyle(testFont(t), pixelcolor.BinaryOn)
	if _, err := style.DrawString("a", geometry.Zero(), BaselineTop, target); !errors.Is(err, errStop) {
		t.Errorf("DrawString() error = %v, want %v", err, errStop)
	}
}

type failing struct{ err error }

func (failing) BoundingBox() geometry.Rectangle { return geometry.Rect(0, 0, 10, 10) }

func (f failing) DrawIter(pixels iter.Seq[draw.Pixel[bin]]) error {
	for range pixels {
		return f.err
	}
	return nil
}
