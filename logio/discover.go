// Package logio discovers and decodes the per-sample log files of an
// Iso-Seq refine run: one *.filter_summary.json and one *.report.csv
// per sample.
package logio

import (
	"io/fs"
	"path/filepath"
	"strings"

	"isorefine/refine"
)

const (
	SummarySuffix = ".filter_summary.json"
	ReportSuffix  = ".report.csv"
)

type LogFile struct {
	Path   string
	Sample string
}

type Discovered struct {
	Summaries []LogFile
	Reports   []LogFile
}

// SampleName derives the sample identifier for a log file. The cleaned
// policy strips the known suffix so a sample's JSON and CSV agree on
// the join key; the raw policy keeps the file name as-is.
func SampleName(path string, policy refine.NamingPolicy) string {
	base := filepath.Base(path)
	if policy == refine.RawFileName {
		return base
	}
	base = strings.TrimSuffix(base, SummarySuffix)
	base = strings.TrimSuffix(base, ReportSuffix)
	return base
}

// Discover walks root and classifies every summary and report file it
// finds, keyed by the derived sample name.
func Discover(root string, policy refine.NamingPolicy) (*Discovered, error) {
	found := &Discovered{}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(entry.Name(), SummarySuffix):
			found.Summaries = append(found.Summaries, LogFile{Path: path, Sample: SampleName(path, policy)})
		case strings.HasSuffix(entry.Name(), ReportSuffix):
			found.Reports = append(found.Reports, LogFile{Path: path, Sample: SampleName(path, policy)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
