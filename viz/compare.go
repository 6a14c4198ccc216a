// Package viz - comparative evaluation of several rules into one dataset.
package viz

import (
	"fmt"

	"github.com/katalvlaran/orbitviz/orbit"
)

// defaultPalette supplies distinct color tokens when the caller passes nil
// colors to Evaluate; cycled when there are more rules than entries.
var defaultPalette = []string{
	"blue", "red", "green", "orange", "purple", "teal", "magenta", "gold",
}

// Layout is the explicit, immutable presentation configuration handed to
// the rendering collaborator alongside the dataset. There is no ambient
// process-wide render state: callers pass a Layout per evaluation.
type Layout struct {
	// Title heads the plot.
	Title string

	// XAxis, YAxis, ZAxis caption the three axes.
	XAxis, YAxis, ZAxis string

	// Width and Height size the plot surface in pixels.
	Width, Height int

	// PointSize sizes each rendered marker.
	PointSize int
}

// DefaultLayout returns the canonical scatterplot configuration:
// 800×600 surface, marker size 3, generic axis captions.
func DefaultLayout() Layout {
	return Layout{
		Title:     "3D Interactive Scatterplot",
		XAxis:     "X Axis",
		YAxis:     "Y Axis",
		ZAxis:     "Z Axis",
		Width:     800,
		Height:    600,
		PointSize: 3,
	}
}

// Renderer is the external plotting collaborator. It receives the ordered
// triple plus a Layout and owns all presentation concerns; the core never
// renders anything itself.
type Renderer interface {
	Render(ds *Dataset, layout Layout) error
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(ds *Dataset, layout Layout) error

// Render implements Renderer.
func (f RenderFunc) Render(ds *Dataset, layout Layout) error { return f(ds, layout) }

// Evaluate generates one merged dataset across several rules and hands it
// to the rendering collaborator. Delegation goes to Generate with the full
// rule list, so rule grouping is preserved: a downstream consumer can still
// tell which points came from which rule by color.
//
// Colors: pass one color per rule, or nil to assign distinct colors from
// the default palette. A nil renderer skips the hand-off and just returns
// the dataset.
func Evaluate(upTo int64, rules []orbit.Rule, colors []string, build PointBuilder, layout Layout, r Renderer, opts ...Option) (*Dataset, error) {
	if colors == nil {
		colors = paletteFor(len(rules))
	}

	ds, err := Generate(upTo, rules, colors, build, opts...)
	if err != nil {
		return nil, err
	}

	if r != nil {
		if err = r.Render(ds, layout); err != nil {
			return ds, fmt.Errorf("viz: renderer: %w", err)
		}
	}

	return ds, nil
}

// paletteFor assigns n colors from the default palette, cycling as needed.
func paletteFor(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = defaultPalette[i%len(defaultPalette)]
	}

	return colors
}
