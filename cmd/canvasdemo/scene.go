package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scene describes one image rendered by canvasdemo.
type scene struct {
	Width      int
	Height     int
	Background string
	Shapes     []shape

	// Optional post-processing of the shape layer.
	Blur   *blurConfig
	Shadow *shadowConfig
}

// shape is one drawing call. Which fields apply depends on Kind:
//
//	roundrect: X, Y, W, H, R
//	circle:    X, Y, R
//	ellipse:   X, Y, R1, R2
//	varline:   X, Y, X2, Y2, W1, W2, Rounded
type shape struct {
	Kind    string
	X, Y    float64
	W, H    float64
	R       float64
	R1      float64 `yaml:"r1"`
	R2      float64 `yaml:"r2"`
	X2      float64 `yaml:"x2"`
	Y2      float64 `yaml:"y2"`
	W1      float64 `yaml:"w1"`
	W2      float64 `yaml:"w2"`
	Rounded bool

	Fill      string
	Stroke    string
	LineWidth float64 `yaml:"lineWidth"`

	// Label is drawn next to the shape when labels are enabled.
	Label string
}

type blurConfig struct {
	Radius    int
	Intensity float64
}

type shadowConfig struct {
	Color string
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
}

const (
	kindRoundRect = "roundrect"
	kindCircle    = "circle"
	kindEllipse   = "ellipse"
	kindVarLine   = "varline"
)

func readScene(filename string) (*scene, error) {
	if filename == "" {
		return nil, errors.New("missing scene file")
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var s scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &s, nil
}

func (s *scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	for i, sh := range s.Shapes {
		switch sh.Kind {
		case kindRoundRect, kindCircle, kindEllipse, kindVarLine:
		default:
			return fmt.Errorf("shape %d: unknown kind %q", i, sh.Kind)
		}
	}
	if s.Blur != nil && s.Blur.Radius < 0 {
		return fmt.Errorf("negative blur radius %d", s.Blur.Radius)
	}
	return nil
}

// defaultScene is rendered when no scene file is given.
func defaultScene() *scene {
	return &scene{
		Width:      480,
		Height:     320,
		Background: "#f4f1ea",
		Shapes: []shape{
			{Kind: kindRoundRect, X: 24, Y: 24, W: 200, H: 120, R: 18, Fill: "#2e86ab", Stroke: "#1b4f66", LineWidth: 3, Label: "roundRect"},
			{Kind: kindCircle, X: 340, Y: 84, R: 56, Fill: "tomato", Label: "circle"},
			{Kind: kindEllipse, X: 124, Y: 236, R1: 180, R2: 90, Fill: "rgba(241, 143, 1, 0.9)", Stroke: "#7a4800", LineWidth: 2, Label: "ellipse"},
			{Kind: kindVarLine, X: 260, Y: 200, X2: 450, Y2: 200, W1: 4, W2: 28, Fill: "#3b1f2b", Label: "varLine"},
			{Kind: kindVarLine, X: 260, Y: 270, X2: 450, Y2: 270, W1: 28, W2: 4, Rounded: true, Fill: "#44af69", Label: "varLineRounded"},
		},
		Blur:   &blurConfig{Radius: 3, Intensity: 0.06},
		Shadow: &shadowConfig{Color: "rgba(0, 0, 0, 0.35)", DX: 6, DY: 6},
	}
}
