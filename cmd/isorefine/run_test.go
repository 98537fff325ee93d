package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"isorefine/config"
	"isorefine/refine"
)

const testReportCSV = `id,strand,fivelen,threelen,polyAlen,insertlen,primer
m1,+,10,5,20,500,p1
m2,-,12,7,22,520,p1
`

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	cfg.Workers = 2
	return cfg
}

func TestRunReport(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorePath = filepath.Join(t.TempDir(), "store")
	writeFile(t, filepath.Join(cfg.InputDir, "s1.filter_summary.json"), `{"num_reads_fl": 100}`)
	writeFile(t, filepath.Join(cfg.InputDir, "s1.report.csv"), testReportCSV)

	var out bytes.Buffer
	assert.Nil(t, runReport(cfg, &out))

	assert.Contains(t, out.String(), "Full-length")
	assert.Contains(t, out.String(), "Mean 5' primer length")
	assert.Contains(t, out.String(), "s1")

	buf, err := os.ReadFile(filepath.Join(cfg.OutputDir, "multiqc_isoseq_refine_report.json"))
	assert.Nil(t, err)

	var data map[string]refine.MergedRecord
	assert.Nil(t, json.Unmarshal(buf, &data))
	assert.Equal(t, 100.0, data["s1"]["num_reads_fl"])
	assert.Equal(t, 11.0, data["s1"]["mean_fivelen"])
	assert.Equal(t, 510.0, data["s1"]["mean_insertlen"])
}

// A sample with an unmatched pair still appears, partially.
func TestRunReportPartialPairs(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.InputDir, "s2.filter_summary.json"), `{"num_reads_fl": 7}`)
	writeFile(t, filepath.Join(cfg.InputDir, "s3.report.csv"), testReportCSV)

	var out bytes.Buffer
	assert.Nil(t, runReport(cfg, &out))

	buf, err := os.ReadFile(filepath.Join(cfg.OutputDir, "multiqc_isoseq_refine_report.json"))
	assert.Nil(t, err)

	var data map[string]refine.MergedRecord
	assert.Nil(t, json.Unmarshal(buf, &data))
	assert.Len(t, data, 2)
	assert.Equal(t, 7.0, data["s2"]["num_reads_fl"])
	assert.Equal(t, 11.0, data["s3"]["mean_fivelen"])
}

// A malformed report degrades that sample only.
func TestRunReportMalformedSample(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.InputDir, "good.report.csv"), testReportCSV)
	writeFile(t, filepath.Join(cfg.InputDir, "bad.report.csv"),
		"id,strand,fivelen,threelen,polyAlen,insertlen,primer\nm1,+,ten,5,20,500,p1\n")

	var out bytes.Buffer
	assert.Nil(t, runReport(cfg, &out))

	buf, err := os.ReadFile(filepath.Join(cfg.OutputDir, "multiqc_isoseq_refine_report.json"))
	assert.Nil(t, err)

	var data map[string]refine.MergedRecord
	assert.Nil(t, json.Unmarshal(buf, &data))
	assert.Len(t, data, 1)
	assert.Equal(t, 11.0, data["good"]["mean_fivelen"])
}

func TestRunReportNothingFound(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	err := runReport(cfg, &out)
	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "no refine log files"))
}
