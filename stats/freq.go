package stats

// Freq counts occurrences of string labels.
type Freq struct {
	counts map[string]uint64
	total  uint64
}

func NewFreq() *Freq {
	return &Freq{
		counts: make(map[string]uint64),
		total:  0,
	}
}

func (f *Freq) Update(label string) {
	f.counts[label]++
	f.total++
}

func (f *Freq) Count(label string) uint64 {
	return f.counts[label]
}

// Total is the number of Update calls, which equals the sum of all counts.
func (f *Freq) Total() uint64 {
	return f.total
}

func (f *Freq) Counts() map[string]uint64 {
	out := make(map[string]uint64, len(f.counts))
	for label, count := range f.counts {
		out[label] = count
	}
	return out
}
