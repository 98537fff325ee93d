package refine

import (
	"fmt"
	"math"
	"strconv"
)

// Column names of the Iso-Seq refine report CSV.
const (
	ColFiveLen   = "fivelen"
	ColThreeLen  = "threelen"
	ColPolyALen  = "polyAlen"
	ColInsertLen = "insertlen"
	ColStrand    = "strand"
	ColPrimer    = "primer"
)

// PerReadRecord is one row of the per-read report table.
type PerReadRecord struct {
	FiveLen   float64
	ThreeLen  float64
	PolyALen  float64
	InsertLen float64
	Strand    string
	Primer    string
}

// MalformedRecordError marks input that cannot be folded: an unparsable
// or non-finite numeric field, a missing column, an empty label, or a
// summary payload that is not an object. It is fatal to one sample's
// aggregation only.
type MalformedRecordError struct {
	Column string
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Column == "" {
		return "malformed record: " + e.Reason
	}
	return fmt.Sprintf("malformed record: column %q, value %q: %s", e.Column, e.Value, e.Reason)
}

// RowParser resolves the tracked columns against a CSV header once, so
// rows are parsed by index instead of dynamic lookup.
type RowParser struct {
	fiveLen   int
	threeLen  int
	polyALen  int
	insertLen int
	strand    int
	primer    int
}

func NewRowParser(header []string) (*RowParser, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	parser := &RowParser{}
	for _, col := range []struct {
		name string
		pos  *int
	}{
		{ColFiveLen, &parser.fiveLen},
		{ColThreeLen, &parser.threeLen},
		{ColPolyALen, &parser.polyALen},
		{ColInsertLen, &parser.insertLen},
		{ColStrand, &parser.strand},
		{ColPrimer, &parser.primer},
	} {
		pos, ok := index[col.name]
		if !ok {
			return nil, &MalformedRecordError{Column: col.name, Reason: "column missing from header"}
		}
		*col.pos = pos
	}
	return parser, nil
}

func (p *RowParser) Parse(row []string) (PerReadRecord, error) {
	record := PerReadRecord{}

	for _, col := range []struct {
		name  string
		pos   int
		value *float64
	}{
		{ColFiveLen, p.fiveLen, &record.FiveLen},
		{ColThreeLen, p.threeLen, &record.ThreeLen},
		{ColPolyALen, p.polyALen, &record.PolyALen},
		{ColInsertLen, p.insertLen, &record.InsertLen},
	} {
		if col.pos >= len(row) {
			return PerReadRecord{}, &MalformedRecordError{Column: col.name, Reason: "row shorter than header"}
		}
		value, err := strconv.ParseFloat(row[col.pos], 64)
		if err != nil {
			return PerReadRecord{}, &MalformedRecordError{Column: col.name, Value: row[col.pos], Reason: "not a number"}
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return PerReadRecord{}, &MalformedRecordError{Column: col.name, Value: row[col.pos], Reason: "not finite"}
		}
		*col.value = value
	}

	for _, col := range []struct {
		name  string
		pos   int
		value *string
	}{
		{ColStrand, p.strand, &record.Strand},
		{ColPrimer, p.primer, &record.Primer},
	} {
		if col.pos >= len(row) {
			return PerReadRecord{}, &MalformedRecordError{Column: col.name, Reason: "row shorter than header"}
		}
		if row[col.pos] == "" {
			return PerReadRecord{}, &MalformedRecordError{Column: col.name, Reason: "empty label"}
		}
		*col.value = row[col.pos]
	}

	return record, nil
}
