package refine

// SampleSummary is the already-computed per-sample summary payload
// (e.g. num_reads_fl, num_reads_flnc, num_reads_flnc_polya). The core
// passes it through without interpreting individual fields.
type SampleSummary map[string]interface{}

// LoadSummary validates that a decoded payload is an object and returns
// it unchanged.
func LoadSummary(payload interface{}) (SampleSummary, error) {
	fields, ok := payload.(map[string]interface{})
	if !ok {
		return nil, &MalformedRecordError{Reason: "summary payload is not an object"}
	}
	return SampleSummary(fields), nil
}
