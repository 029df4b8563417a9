package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/tinygfx/framebuffer"
	"github.com/gogpu/tinygfx/geometry"
	"github.com/gogpu/tinygfx/mock"
	"github.com/gogpu/tinygfx/pixelcolor"
)

type rgb = pixelcolor.Rgb888

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    rgb
		wantErr bool
	}{
		{in: "#ff0000", want: pixelcolor.NewRgb888(255, 0, 0)},
		{in: "#0f0", want: pixelcolor.NewRgb888(0, 255, 0)},
		{in: " #102030 ", want: pixelcolor.NewRgb888(0x10, 0x20, 0x30)},
		{in: "steelblue", want: pixelcolor.NewRgb888(70, 130, 180)},
		{in: "SteelBlue", want: pixelcolor.NewRgb888(70, 130, 180)},
		{in: "black", want: pixelcolor.NewRgb888(0, 0, 0)},
		{in: "#12", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "no-such-color", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{name: "empty shape list", doc: "shapes: []\n", valid: true},
		{name: "rectangle", doc: "shapes:\n  - kind: rectangle\n    at: [1, 2]\n    size: [3, 4]\n    fill: red\n", valid: true},
		{name: "text", doc: "shapes:\n  - kind: text\n    at: [0, 10]\n    text: hi\n    color: white\n    align: center\n", valid: true},
		{name: "arc", doc: "shapes:\n  - kind: arc\n    at: [0, 0]\n    diameter: 9\n    start: -90\n    sweep: 180.5\n    stroke: white\n", valid: true},
		{name: "missing shapes", doc: "background: black\n"},
		{name: "missing kind", doc: "shapes:\n  - at: [1, 2]\n"},
		{name: "unknown kind", doc: "shapes:\n  - kind: star\n"},
		{name: "rectangle without size", doc: "shapes:\n  - kind: rectangle\n    at: [1, 2]\n"},
		{name: "line with three points", doc: "shapes:\n  - kind: line\n    points: [[0, 0], [1, 1], [2, 2]]\n"},
		{name: "triangle with two points", doc: "shapes:\n  - kind: triangle\n    points: [[0, 0], [1, 1]]\n"},
		{name: "negative size", doc: "shapes:\n  - kind: ellipse\n    at: [0, 0]\n    size: [-1, 2]\n"},
		{name: "unknown field", doc: "shapes:\n  - kind: circle\n    at: [0, 0]\n    diameter: 4\n    radius2: 3\n"},
		{name: "bad alignment", doc: "shapes:\n  - kind: circle\n    at: [0, 0]\n    diameter: 4\n    alignment: middle\n"},
		{name: "empty document", doc: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			if tt.valid {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(verr.Problems) == 0 {
				t.Errorf("ValidationError.Problems is empty")
			}
		})
	}
}

func TestValidateSyntaxError(t *testing.T) {
	err := Validate([]byte("shapes: [\n"))
	if err == nil {
		t.Fatal("Validate() error = nil, want parse error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Errorf("Validate() error = %v, want a parse error", err)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
background: navy
shapes:
  - kind: polyline
    points: [[0, 0], [4, 0], [4, 4]]
    stroke: white
    stroke_width: 3
  - kind: rounded_rectangle
    at: [1, 1]
    size: [10, 8]
    radius: [2, 2]
    fill: "#00ff00"
    alignment: outside
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Background != "navy" || len(s.Shapes) != 2 {
		t.Fatalf("Parse() = %+v, want navy background and 2 shapes", s)
	}
	pl := s.Shapes[0]
	if len(pl.Points) != 3 || pl.Points[2] != (Point{4, 4}) {
		t.Errorf("Points = %v, want 3 points ending at [4 4]", pl.Points)
	}
	if pl.StrokeWidth == nil || *pl.StrokeWidth != 3 {
		t.Errorf("StrokeWidth = %v, want 3", pl.StrokeWidth)
	}
	rr := s.Shapes[1]
	if rr.Size != (Size{10, 8}) || rr.Radius != (Size{2, 2}) || rr.Alignment != "outside" {
		t.Errorf("rounded rectangle = %+v", rr)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := "shapes:\n  - kind: circle\n    at: [0, 0]\n    diameter: 5\n    fill: white\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Shapes) != 1 || s.Shapes[0].Diameter != 5 {
		t.Errorf("Load() = %+v, want one circle of diameter 5", s)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestRenderFramebuffer(t *testing.T) {
	s, err := Parse([]byte(`
background: blue
shapes:
  - kind: rectangle
    at: [1, 1]
    size: [2, 2]
    fill: red
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fb := framebuffer.New[rgb](4, 4)
	if err := Render[rgb](s, fb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	red, blue := pixelcolor.NewRgb888(255, 0, 0), pixelcolor.NewRgb888(0, 0, 255)
	for p := range fb.BoundingBox().Points().All() {
		want := blue
		if geometry.Rect(1, 1, 2, 2).Contains(p) {
			want = red
		}
		if got, _ := fb.Pixel(p); got != want {
			t.Errorf("Pixel(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestRenderBinaryMock(t *testing.T) {
	s, err := Parse([]byte(`
shapes:
  - kind: rectangle
    at: [0, 0]
    size: [3, 3]
    stroke: white
    fill: black
    alignment: inside
  - kind: line
    points: [[5, 0], [5, 2]]
    stroke: "#ffffff"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	d := mock.New[pixelcolor.BinaryColor]()
	if err := Render[pixelcolor.BinaryColor](s, d); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	d.AssertPattern(t, []string{
		"###  #",
		"#.#  #",
		"###  #",
	})
}

func TestRenderText(t *testing.T) {
	s, err := Parse([]byte(`
shapes:
  - kind: text
    at: [2, 2]
    text: "Hi"
    color: yellow
    baseline: top
    underline: true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fb := framebuffer.New[rgb](32, 24)
	if err := Render[rgb](s, fb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	yellow := pixelcolor.NewRgb888(255, 255, 0)
	var lit int
	for _, c := range fb.Data() {
		if c == yellow {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no text pixels drawn")
	}
	// Top-left pixel of the frame is outside the text box.
	if got, _ := fb.Pixel(geometry.Pt(0, 0)); got == yellow {
		t.Errorf("Pixel(0, 0) = %v, want untouched", got)
	}
}

func TestDrawablesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "stroke color", doc: "shapes:\n  - kind: circle\n    at: [0, 0]\n    diameter: 4\n    stroke: notacolor\n", want: ErrUnknownColor},
		{name: "text color", doc: "shapes:\n  - kind: text\n    at: [0, 0]\n    text: x\n    color: \"#zzz\"\n", want: ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if _, err := Drawables[rgb](s); !errors.Is(err, tt.want) {
				t.Errorf("Drawables() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderBadBackground(t *testing.T) {
	s := &Scene{Background: "nope"}
	if err := Render[rgb](s, framebuffer.New[rgb](2, 2)); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("Render() error = %v, want ErrUnknownColor", err)
	}
}
