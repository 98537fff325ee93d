package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"isorefine/utils"
)

var testHeader = []string{"id", "fivelen", "threelen", "polyAlen", "insertlen", "strand", "primer"}

func TestRowParser(t *testing.T) {
	parser, err := NewRowParser(testHeader)
	utils.AssertEqual(t, err, nil)

	record, err := parser.Parse([]string{"r1", "10", "5", "20", "500", "+", "p1"})
	utils.AssertEqual(t, err, nil)
	assert.Equal(t, PerReadRecord{
		FiveLen:   10,
		ThreeLen:  5,
		PolyALen:  20,
		InsertLen: 500,
		Strand:    "+",
		Primer:    "p1",
	}, record)
}

func TestRowParserHeaderOrderIrrelevant(t *testing.T) {
	parser, err := NewRowParser([]string{"primer", "strand", "insertlen", "polyAlen", "threelen", "fivelen"})
	utils.AssertEqual(t, err, nil)

	record, err := parser.Parse([]string{"p2", "-", "520", "22", "7", "12"})
	utils.AssertEqual(t, err, nil)
	utils.AssertEqual(t, record.FiveLen, 12.0)
	utils.AssertEqual(t, record.InsertLen, 520.0)
	utils.AssertEqual(t, record.Strand, "-")
	utils.AssertEqual(t, record.Primer, "p2")
}

func TestRowParserMissingColumn(t *testing.T) {
	_, err := NewRowParser([]string{"fivelen", "threelen", "strand", "primer"})

	malformed, ok := err.(*MalformedRecordError)
	utils.AssertTrue(t, ok)
	utils.AssertEqual(t, malformed.Column, ColPolyALen)
}

func TestRowParserMalformedRows(t *testing.T) {
	parser, err := NewRowParser(testHeader)
	utils.AssertEqual(t, err, nil)

	rows := [][]string{
		{"r1", "ten", "5", "20", "500", "+", "p1"},  // not a number
		{"r1", "10", "NaN", "20", "500", "+", "p1"}, // non-finite
		{"r1", "10", "5", "+Inf", "500", "+", "p1"}, // non-finite
		{"r1", "10", "5", "20", "", "+", "p1"},      // empty numeric
		{"r1", "10", "5", "20", "500", "", "p1"},    // empty label
		{"r1", "10", "5", "20", "500", "+", ""},     // empty label
		{"r1", "10", "5"},                           // short row
	}
	for _, row := range rows {
		_, err := parser.Parse(row)
		_, ok := err.(*MalformedRecordError)
		utils.AssertTrue(t, ok)
	}
}
