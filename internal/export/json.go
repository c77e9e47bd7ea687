package export

import (
	"encoding/json"
	"io"
	"os"
)

// BenchRecord is one style's off-screen run.
type BenchRecord struct {
	Style   string    `json:"style"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Frames  int       `json:"frames"`
	MeanMs  float64   `json:"mean_ms"`
	MaxMs   float64   `json:"max_ms"`
	CostsMs []float64 `json:"costs_ms"`
}

// WriteJSON writes records to path. A failed close is reported.
func WriteJSON(path string, records []BenchRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return encodeJSON(file, records)
}

func encodeJSON(w io.WriteCloser, records []BenchRecord) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
