package refine

import (
	"io"

	"isorefine/stats"
)

// RunningAggregate folds per-read records for one sample. The tracked
// field set is fixed and initialized eagerly, so an exhausted empty
// stream is distinguishable from one that saw zero-valued records.
type RunningAggregate struct {
	fiveLen    *stats.Running
	threeLen   *stats.Running
	polyALen   *stats.Running
	insertLen  *stats.Running
	strand     *stats.Freq
	primer     *stats.Freq
	numRecords uint64
}

func NewRunningAggregate() *RunningAggregate {
	return &RunningAggregate{
		fiveLen:    stats.NewRunning(),
		threeLen:   stats.NewRunning(),
		polyALen:   stats.NewRunning(),
		insertLen:  stats.NewRunning(),
		strand:     stats.NewFreq(),
		primer:     stats.NewFreq(),
		numRecords: 0,
	}
}

func (agg *RunningAggregate) Update(record PerReadRecord) {
	agg.fiveLen.Update(record.FiveLen)
	agg.threeLen.Update(record.ThreeLen)
	agg.polyALen.Update(record.PolyALen)
	agg.insertLen.Update(record.InsertLen)
	agg.strand.Update(record.Strand)
	agg.primer.Update(record.Primer)
	agg.numRecords++
}

// FieldSummary is the finalized view of one numeric column.
type FieldSummary struct {
	Min  float64
	Mean float64
	Std  float64
	Max  float64
}

// SampleAggregate is the finalized, immutable aggregate for one sample.
type SampleAggregate struct {
	FiveLen      FieldSummary
	ThreeLen     FieldSummary
	PolyALen     FieldSummary
	InsertLen    FieldSummary
	StrandCounts map[string]uint64
	PrimerCounts map[string]uint64
	NumRecords   uint64
}

func summarize(r *stats.Running) FieldSummary {
	return FieldSummary{
		Min:  r.Min(),
		Mean: r.Mean(),
		Std:  r.SD(),
		Max:  r.Max(),
	}
}

// Finalize returns nil when no records were folded: an empty stream
// yields no aggregate at all, not a zero-filled one.
func (agg *RunningAggregate) Finalize() *SampleAggregate {
	if agg.numRecords == 0 {
		return nil
	}
	return &SampleAggregate{
		FiveLen:      summarize(agg.fiveLen),
		ThreeLen:     summarize(agg.threeLen),
		PolyALen:     summarize(agg.polyALen),
		InsertLen:    summarize(agg.insertLen),
		StrandCounts: agg.strand.Counts(),
		PrimerCounts: agg.primer.Counts(),
		NumRecords:   agg.numRecords,
	}
}

// RecordReader yields per-read records until io.EOF.
type RecordReader interface {
	Next() (PerReadRecord, error)
}

// Fold consumes the reader in a single pass. Any error other than
// io.EOF aborts this sample's aggregation.
func Fold(reader RecordReader) (*SampleAggregate, error) {
	agg := NewRunningAggregate()
	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		agg.Update(record)
	}
	return agg.Finalize(), nil
}

// Fields flattens the aggregate into the merged-record naming scheme:
// min_/mean_/std_/max_<column> plus <column>_counts.
func (sa *SampleAggregate) Fields() map[string]interface{} {
	out := make(map[string]interface{}, 18)
	for _, col := range []struct {
		name    string
		summary FieldSummary
	}{
		{ColFiveLen, sa.FiveLen},
		{ColThreeLen, sa.ThreeLen},
		{ColPolyALen, sa.PolyALen},
		{ColInsertLen, sa.InsertLen},
	} {
		out["min_"+col.name] = col.summary.Min
		out["mean_"+col.name] = col.summary.Mean
		out["std_"+col.name] = col.summary.Std
		out["max_"+col.name] = col.summary.Max
	}
	out["strand_counts"] = sa.StrandCounts
	out["primer_counts"] = sa.PrimerCounts
	return out
}
