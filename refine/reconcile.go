package refine

import (
	"fmt"
	"sort"
	"strings"
)

// NamingPolicy is how a data source derives sample identifiers from
// file names. Both sources must use the cleaned policy for their keys
// to join.
type NamingPolicy int

const (
	CleanedName NamingPolicy = iota
	RawFileName
)

func (p NamingPolicy) String() string {
	if p == RawFileName {
		return "raw-filename"
	}
	return "cleaned"
}

type WarningKind int

const (
	// KeySetMismatch: the two sources disagree on which samples exist.
	KeySetMismatch WarningKind = iota
	// IncompatibleSampleNaming: the sources derive sample identifiers
	// differently, so the join key itself is unreliable.
	IncompatibleSampleNaming
)

type Warning struct {
	Kind    WarningKind
	Samples []string
	Message string
}

// MergedRecord is the shallow union of a sample's summary fields and
// flattened aggregate fields.
type MergedRecord map[string]interface{}

type ReconcileOptions struct {
	SummaryNaming NamingPolicy
	ReadNaming    NamingPolicy
}

// Reconcile joins the two per-sample sources on sample identifier.
// The output key set is the union of both inputs; a sample present in
// only one source yields a partial record plus a KeySetMismatch
// warning. An incompatible naming configuration is reported once for
// the batch and the merge still proceeds best-effort.
func Reconcile(
	summaries map[string]SampleSummary,
	aggregates map[string]*SampleAggregate,
	opts ReconcileOptions) (map[string]MergedRecord, []Warning) {

	warnings := make([]Warning, 0)

	if opts.SummaryNaming != opts.ReadNaming || opts.SummaryNaming == RawFileName {
		warnings = append(warnings, Warning{
			Kind: IncompatibleSampleNaming,
			Message: fmt.Sprintf(
				"summary files use %s sample names and report files use %s sample names; "+
					"merged results may be mis-joined",
				opts.SummaryNaming, opts.ReadNaming),
		})
	}

	merged := make(map[string]MergedRecord, len(summaries))
	for name, summary := range summaries {
		record := make(MergedRecord, len(summary))
		for field, value := range summary {
			record[field] = value
		}
		merged[name] = record
	}
	for name, aggregate := range aggregates {
		record, ok := merged[name]
		if !ok {
			record = make(MergedRecord)
			merged[name] = record
		}
		for field, value := range aggregate.Fields() {
			record[field] = value
		}
	}

	if diff := symmetricDifference(summaries, aggregates); len(diff) > 0 {
		warnings = append(warnings, Warning{
			Kind:    KeySetMismatch,
			Samples: diff,
			Message: fmt.Sprintf(
				"summary and report files found for different sample sets, missing a pair for: %s",
				strings.Join(diff, ", ")),
		})
	}

	return merged, warnings
}

func symmetricDifference(
	summaries map[string]SampleSummary,
	aggregates map[string]*SampleAggregate) []string {

	diff := make([]string, 0)
	for name := range summaries {
		if _, ok := aggregates[name]; !ok {
			diff = append(diff, name)
		}
	}
	for name := range aggregates {
		if _, ok := summaries[name]; !ok {
			diff = append(diff, name)
		}
	}
	sort.Strings(diff)
	return diff
}
