// Package export writes traces out as JSON, CSV, SVG and animated GIF.
// Exports are one-way: nothing here reads a trace back.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/trace"
)

// Document is the JSON export of one trace. Exactly one of Steps and Delta
// is set.
type Document struct {
	ID        string             `json:"id,omitempty"`
	Generated time.Time          `json:"generated"`
	Locale    string             `json:"locale,omitempty"`
	Input     []float64          `json:"input"`
	Shrink    float64            `json:"shrink_factor"`
	Listing   []string           `json:"listing,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
	Phases    []metrics.Phase    `json:"phases"`
	Steps     trace.Trace        `json:"steps,omitempty"`
	Delta     *trace.Delta       `json:"delta,omitempty"`
}

type DocOption func(*Document)

func WithID(id string) DocOption {
	return func(d *Document) { d.ID = id }
}

func WithLocale(locale string) DocOption {
	return func(d *Document) { d.Locale = locale }
}

// WithListing embeds the reference listing SourceLine points into.
func WithListing() DocOption {
	return func(d *Document) { d.Listing = append([]string(nil), trace.Listing...) }
}

// Compact stores the trace in delta form instead of full snapshots.
func Compact() DocOption {
	return func(d *Document) {
		d.Delta = trace.Compact(d.Steps)
		d.Steps = nil
	}
}

// NewDocument builds the export of t, generated from input.
func NewDocument(input []float64, t trace.Trace, opts ...DocOption) Document {
	d := Document{
		Generated: time.Now().UTC(),
		Input:     append([]float64(nil), input...),
		Shrink:    trace.ShrinkFactor,
		Metrics:   metrics.Collect(t),
		Phases:    metrics.Phases(t),
		Steps:     t,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
