package logio

import (
	"encoding/json"
	"io"
	"os"

	"isorefine/refine"
)

// ReadSummary decodes one summary payload and validates its shape.
func ReadSummary(r io.Reader) (refine.SampleSummary, error) {
	var payload interface{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, &refine.MalformedRecordError{Reason: "summary payload is not valid JSON: " + err.Error()}
	}
	return refine.LoadSummary(payload)
}

func ReadSummaryFile(path string) (refine.SampleSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSummary(f)
}
