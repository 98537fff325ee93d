package report

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"isorefine/refine"
	"isorefine/utils"
)

func TestGeneralStatsHeaders(t *testing.T) {
	headers := GeneralStatsHeaders()
	utils.AssertEqual(t, len(headers), 3)
	utils.AssertEqual(t, headers[0].ID, "num_reads_fl")
	utils.AssertEqual(t, headers[1].ID, "num_reads_flnc")
	utils.AssertEqual(t, headers[2].ID, "num_reads_flnc_polya")
	for _, header := range headers {
		utils.AssertTrue(t, header.Title != "")
		utils.AssertTrue(t, header.Description != "")
		utils.AssertTrue(t, header.Scale != "")
		utils.AssertEqual(t, header.Format, "{:,.d}")
	}
}

func TestRefineTableHeaders(t *testing.T) {
	headers := RefineTableHeaders()
	utils.AssertEqual(t, len(headers), 16)

	ids := make(map[string]bool, len(headers))
	for _, header := range headers {
		ids[header.ID] = true
		utils.AssertTrue(t, header.Title != "")
		utils.AssertTrue(t, strings.Contains(header.Description, "base pair"))
	}
	for _, prefix := range []string{"min_", "mean_", "std_", "max_"} {
		for _, col := range []string{"fivelen", "threelen", "polyAlen", "insertlen"} {
			utils.AssertTrue(t, ids[prefix+col])
		}
	}
}

func TestRenderTable(t *testing.T) {
	records := map[string]refine.MergedRecord{
		"s2": {"num_reads_fl": 7.0},
		"s1": {"num_reads_fl": 100.0, "num_reads_flnc": 90.5},
	}

	out := RenderTable(records, GeneralStatsHeaders())
	lines := strings.Split(out, "\n")
	utils.AssertEqual(t, len(lines), 3)
	utils.AssertTrue(t, strings.HasPrefix(lines[0], "Sample"))

	// Rows sorted by sample, missing cells empty.
	utils.AssertTrue(t, strings.HasPrefix(lines[1], "s1"))
	utils.AssertTrue(t, strings.HasPrefix(lines[2], "s2"))
	utils.AssertTrue(t, strings.Contains(lines[1], "100"))
	utils.AssertTrue(t, strings.Contains(lines[1], "90.50"))
	utils.AssertTrue(t, strings.Contains(lines[2], "7"))
}

func TestRenderTableEmpty(t *testing.T) {
	out := RenderTable(nil, GeneralStatsHeaders())
	lines := strings.Split(out, "\n")
	utils.AssertEqual(t, len(lines), 1)
}

func TestWriteDataFile(t *testing.T) {
	dir := t.TempDir()
	records := map[string]refine.MergedRecord{
		"s1": {"num_reads_fl": 100.0, "mean_fivelen": 11.0},
	}

	path, err := WriteDataFile(dir, records)
	assert.Nil(t, err)
	utils.AssertTrue(t, strings.HasSuffix(path, DataFileName))

	buf, err := os.ReadFile(path)
	assert.Nil(t, err)

	var decoded map[string]refine.MergedRecord
	assert.Nil(t, json.Unmarshal(buf, &decoded))
	utils.AssertEqual(t, decoded["s1"]["num_reads_fl"], 100.0)
	utils.AssertEqual(t, decoded["s1"]["mean_fivelen"], 11.0)
}
