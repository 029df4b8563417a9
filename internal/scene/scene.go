// Package scene reads YAML scene files for the tgdemo command and draws
// them with the tinygfx primitives and text.
//
// A scene is a background color and an ordered list of shapes:
//
//	background: navy
//	shapes:
//	  - kind: rectangle
//	    at: [2, 2]
//	    size: [60, 30]
//	    stroke: white
//	    stroke_width: 2
//	  - kind: text
//	    at: [32, 20]
//	    text: "Hello"
//	    color: "#ffcc00"
//	    align: center
//
// Documents are checked against a JSON schema before decoding.
package scene

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed scene.schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Point is an [x, y] pair.
type Point [2]int32

// Size is a [width, height] pair.
type Size [2]uint32

// Shape is one drawable entry of a scene. Which fields apply depends on
// Kind.
type Shape struct {
	Kind     string  `yaml:"kind"`
	At       Point   `yaml:"at"`
	Size     Size    `yaml:"size"`
	Radius   Size    `yaml:"radius"`
	Diameter uint32  `yaml:"diameter"`
	Points   []Point `yaml:"points"`
	Start    float32 `yaml:"start"`
	Sweep    float32 `yaml:"sweep"`

	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth *uint32 `yaml:"stroke_width"`
	Alignment   string  `yaml:"alignment"`

	Text          string `yaml:"text"`
	Color         string `yaml:"color"`
	Background    string `yaml:"background"`
	Align         string `yaml:"align"`
	Baseline      string `yaml:"baseline"`
	Underline     bool   `yaml:"underline"`
	Strikethrough bool   `yaml:"strikethrough"`
}

// Scene is a decoded scene file.
type Scene struct {
	Background string  `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// ValidationError lists the schema violations of a scene document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "scene: invalid document: " + strings.Join(e.Problems, "; ")
}

// Validate checks a YAML scene document against the scene schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("scene: parse: %w", err)
	}
	if doc == nil {
		return &ValidationError{Problems: []string{"empty document"}}
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("scene: validate: %w", err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range result.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}

// Parse validates and decodes a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Parse(data)
}
