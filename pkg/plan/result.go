package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/centerline"
)

// Result is the output document of one extraction run
type Result struct {
	Story       string       `json:"story,omitempty"`
	Centerlines []ResultLine `json:"centerlines"`
}

// ResultLine is one extracted centerline
type ResultLine struct {
	Start     orb.Point `json:"start"`
	End       orb.Point `json:"end"`
	Thickness float64   `json:"thickness"`
	Type      string    `json:"type,omitempty"`
	Sources   []string  `json:"sources,omitempty"`
}

// NewResult builds a result document from extracted centerlines
func NewResult(story string, lines []centerline.Centerline) *Result {
	result := &Result{
		Story:       story,
		Centerlines: make([]ResultLine, 0, len(lines)),
	}
	for _, c := range lines {
		result.Centerlines = append(result.Centerlines, ResultLine{
			Start:     c.Start,
			End:       c.End,
			Thickness: c.Thickness,
			Type:      c.WallType,
			Sources:   c.SourceIDs,
		})
	}
	return result
}

// Encode writes the result as indented JSON
func (r *Result) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// Save writes the result to a JSON file
func (r *Result) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create result file: %w", err)
	}
	defer file.Close()

	return r.Encode(file)
}
