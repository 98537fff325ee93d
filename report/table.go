package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"isorefine/refine"
)

// RenderTable lays the merged records out as plain text, one row per
// sample, with columns in header order. Samples missing a column get
// an empty cell.
func RenderTable(records map[string]refine.MergedRecord, headers []Header) string {
	samples := make([]string, 0, len(records))
	for sample := range records {
		samples = append(samples, sample)
	}
	sort.Strings(samples)

	titles := make([]string, 0, len(headers)+1)
	titles = append(titles, "Sample")
	for _, header := range headers {
		titles = append(titles, header.Title)
	}

	rows := make([][]string, 0, len(samples))
	for _, sample := range samples {
		row := make([]string, 0, len(titles))
		row = append(row, sample)
		for _, header := range headers {
			row = append(row, formatCell(records[sample][header.ID]))
		}
		rows = append(rows, row)
	}

	rightAlign := make(map[int]bool, len(headers))
	for i := range headers {
		rightAlign[i+1] = true
	}

	return strings.Join(formatRows(titles, rows, rightAlign), "\n")
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatRows(titles []string, rows [][]string, rightAlign map[int]bool) []string {
	widths := make([]int, len(titles))
	for i, title := range titles {
		widths[i] = len(title)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(titles, widths, nil))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlign map[int]bool) string {
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlign[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	if len(value) >= width {
		return value
	}
	padding := strings.Repeat(" ", width-len(value))
	if rightAlign {
		return padding + value
	}
	return value + padding
}
