// Package report renders and persists the merged per-sample records.
package report

import "isorefine/refine"

// Header is the display metadata for one report column. Scale and
// Format are opaque styling hints for the rendering host.
type Header struct {
	ID          string
	Title       string
	Description string
	Scale       string
	Format      string
}

// GeneralStatsHeaders are the three summary counts promoted to the
// general statistics table.
func GeneralStatsHeaders() []Header {
	return []Header{
		{
			ID:          "num_reads_fl",
			Title:       "Full-length",
			Description: "Number of CCS where both primers have been detected",
			Scale:       "GnBu",
			Format:      "{:,.d}",
		},
		{
			ID:          "num_reads_flnc",
			Title:       "Non-chimeric full-length",
			Description: "Number of non-chimeric CCS where both primers have been detected",
			Scale:       "RdYlGn",
			Format:      "{:,.d}",
		},
		{
			ID:          "num_reads_flnc_polya",
			Title:       "Poly(A) free non-chimeric full-length",
			Description: "Number of non-chimeric CCS where both primers have been detected and the poly(A) tail has been removed",
			Scale:       "GnBu",
			Format:      "{:,.d}",
		},
	}
}

// RefineTableHeaders are the sixteen aggregate columns of the detail
// table: min/mean/std/max for each tracked numeric field.
func RefineTableHeaders() []Header {
	type column struct {
		name  string
		title string
	}
	columns := []column{
		{refine.ColFiveLen, "5' primer length"},
		{refine.ColThreeLen, "3' primer length"},
		{refine.ColPolyALen, "polyA tail length"},
		{refine.ColInsertLen, "insert length"},
	}

	headers := make([]Header, 0, 4*len(columns))
	for _, col := range columns {
		headers = append(headers,
			Header{
				ID:          "min_" + col.name,
				Title:       "Min " + col.title,
				Description: "The minimum " + col.title + " in base pair",
				Scale:       "GnBu",
			},
			Header{
				ID:          "mean_" + col.name,
				Title:       "Mean " + col.title,
				Description: "The mean " + col.title + " in base pair",
				Scale:       "RdYlGn",
			},
			Header{
				ID:          "std_" + col.name,
				Title:       "Std of " + col.title,
				Description: "The standard deviation of " + col.title + " in base pair",
				Scale:       "GnBu",
			},
			Header{
				ID:          "max_" + col.name,
				Title:       "Max " + col.title,
				Description: "The maximum " + col.title + " in base pair",
				Scale:       "RdYlGn",
			})
	}
	return headers
}
