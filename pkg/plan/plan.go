// Package plan reads and writes the JSON floor-plan documents used by the
// wallaxis CLI. A plan holds the drawn wall faces and optional structural
// reference axes of one story.
package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/centerline"
)

// Plan is one story's worth of drawn geometry
type Plan struct {
	Story string `json:"story,omitempty"`
	Walls []Wall `json:"walls"`
	Axes  []Axis `json:"axes,omitempty"`
}

// Wall is one drawn wall face. Coordinates are [x, y] pairs in the plan's
// length unit, millimeters in typical use.
type Wall struct {
	ID         string    `json:"id,omitempty"`
	Start      orb.Point `json:"start"`
	End        orb.Point `json:"end"`
	Thickness  float64   `json:"thickness,omitempty"`
	Type       string    `json:"type,omitempty"`
	SingleLine bool      `json:"singleLine,omitempty"`
}

// Axis is one structural reference axis
type Axis struct {
	ID    string    `json:"id,omitempty"`
	Start orb.Point `json:"start"`
	End   orb.Point `json:"end"`
}

// Load reads a plan document from a JSON file
func Load(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	return &p, nil
}

// Segments maps the plan's walls to engine input segments.
// Walls without an id are assigned one from their position in the document.
func (p *Plan) Segments() []centerline.Wall {
	walls := make([]centerline.Wall, 0, len(p.Walls))
	for i, w := range p.Walls {
		id := w.ID
		if id == "" {
			id = fmt.Sprintf("wall-%d", i)
		}
		walls = append(walls, centerline.Wall{
			Start:      w.Start,
			End:        w.End,
			Thickness:  w.Thickness,
			WallType:   w.Type,
			ID:         id,
			SingleLine: w.SingleLine,
		})
	}
	return walls
}

// ReferenceAxes maps the plan's axes to engine reference axes
func (p *Plan) ReferenceAxes() []centerline.Axis {
	axes := make([]centerline.Axis, 0, len(p.Axes))
	for i, a := range p.Axes {
		id := a.ID
		if id == "" {
			id = fmt.Sprintf("axis-%d", i)
		}
		axes = append(axes, centerline.Axis{Start: a.Start, End: a.End, ID: id})
	}
	return axes
}
