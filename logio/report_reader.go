package logio

import (
	"encoding/csv"
	"io"
	"os"

	"isorefine/refine"
)

// ReportReader streams per-read records out of a report CSV. The first
// row is the header; a file with no header at all reads as an empty
// stream.
type ReportReader struct {
	csv    *csv.Reader
	parser *refine.RowParser
	closer io.Closer
}

func NewReportReader(r io.Reader) (*ReportReader, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return &ReportReader{}, nil
	}
	if err != nil {
		return nil, err
	}
	parser, err := refine.NewRowParser(header)
	if err != nil {
		return nil, err
	}
	return &ReportReader{csv: reader, parser: parser}, nil
}

// OpenReport opens path for streaming; Close releases the file.
func OpenReport(path string) (*ReportReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	reader, err := NewReportReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	reader.closer = f
	return reader, nil
}

func (r *ReportReader) Next() (refine.PerReadRecord, error) {
	if r.parser == nil {
		return refine.PerReadRecord{}, io.EOF
	}
	row, err := r.csv.Read()
	if err != nil {
		return refine.PerReadRecord{}, err
	}
	return r.parser.Parse(row)
}

func (r *ReportReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
