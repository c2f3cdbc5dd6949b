package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/sortviz/internal/frame"
)

type Document struct {
	Algorithm string             `json:"algorithm"`
	Title     string             `json:"title"`
	Dataset   string             `json:"dataset,omitempty"`
	Count     int                `json:"count"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Frames    [][]Bar            `json:"frames"`
}

type Bar struct {
	Value  int    `json:"v"`
	Role   string `json:"r"`
	Origin int    `json:"o"`
}

// Meta describes the run a trace came from.
type Meta struct {
	Algorithm string
	Title     string
	Dataset   string
	Metrics   map[string]float64
}

func NewDocument(meta Meta, seq frame.Sequence) Document {
	doc := Document{
		Algorithm: meta.Algorithm,
		Title:     meta.Title,
		Dataset:   meta.Dataset,
		Count:     seq.First().Len(),
		Steps:     seq.Len(),
		Metrics:   meta.Metrics,
		Frames:    make([][]Bar, len(seq)),
	}
	for i, f := range seq {
		bars := make([]Bar, len(f))
		for j, e := range f {
			bars[j] = Bar{Value: e.Value, Role: e.Role.String(), Origin: e.Origin}
		}
		doc.Frames[i] = bars
	}
	return doc
}

func JSON(w io.Writer, meta Meta, seq frame.Sequence) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(meta, seq))
}
