package main

import (
	"fmt"
	"io"
	"log"

	"isorefine/config"
	"isorefine/logio"
	"isorefine/refine"
	"isorefine/report"
	"isorefine/storage"
)

// runReport is the whole pass: discover log files, fold per-read
// streams, reconcile with the summaries, render and persist. Malformed
// samples and key-set mismatches are logged and never abort the run.
func runReport(cfg config.Config, out io.Writer) error {
	policy := refine.CleanedName
	if cfg.UseFilenameAsSampleName {
		policy = refine.RawFileName
	}

	found, err := logio.Discover(cfg.InputDir, policy)
	if err != nil {
		return err
	}

	summaries := make(map[string]refine.SampleSummary, len(found.Summaries))
	for _, file := range found.Summaries {
		summary, err := logio.ReadSummaryFile(file.Path)
		if err != nil {
			log.Printf("isorefine: skipping summary for sample %q: %v", file.Sample, err)
			continue
		}
		summaries[file.Sample] = summary
	}

	jobs := make([]refine.FoldJob, 0, len(found.Reports))
	for _, file := range found.Reports {
		path := file.Path
		jobs = append(jobs, refine.FoldJob{
			Sample: file.Sample,
			Open: func() (refine.RecordReader, error) {
				return logio.OpenReport(path)
			},
		})
	}
	aggregates, failures := refine.FoldAll(jobs, cfg.Workers)
	for sample, err := range failures {
		log.Printf("isorefine: skipping report for sample %q: %v", sample, err)
	}

	merged, warnings := refine.Reconcile(summaries, aggregates, refine.ReconcileOptions{
		SummaryNaming: policy,
		ReadNaming:    policy,
	})
	for _, warning := range warnings {
		log.Printf("isorefine: %s", warning.Message)
	}
	if len(merged) == 0 {
		return fmt.Errorf("no refine log files found under %s", cfg.InputDir)
	}

	fmt.Fprintln(out, report.RenderTable(merged, report.GeneralStatsHeaders()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.RenderTable(merged, report.RefineTableHeaders()))

	path, err := report.WriteDataFile(cfg.OutputDir, merged)
	if err != nil {
		return err
	}
	log.Printf("isorefine: wrote %s", path)

	if cfg.StorePath != "" {
		return persistMerged(cfg, merged)
	}
	return nil
}

func persistMerged(cfg config.Config, merged map[string]refine.MergedRecord) error {
	db, err := storage.OpenBadgerDB(cfg.StorePath)
	if err != nil {
		return err
	}
	store := report.NewStore(storage.NewBadgerBackend(db), cfg.Cache)
	if err := store.PutAll(merged); err != nil {
		store.Close()
		return err
	}
	return store.Close()
}
