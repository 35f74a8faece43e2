package sim

import "fmt"

// SeriesLength is the number of points in each traffic chart series.
const SeriesLength = 30

// Series is a fixed-length ring buffer of chart samples.
// Advance drops the oldest sample and appends a new one, so the length
// never changes after construction.
type Series struct {
	data []float64
	head int // index of the oldest sample
}

// NewSeries creates a series of the given length, filling slot i with fill(i).
func NewSeries(size int, fill func(i int) float64) Series {
	if size <= 0 {
		size = SeriesLength
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = fill(i)
	}
	return Series{data: data}
}

// Advance overwrites the oldest sample with v.
func (s *Series) Advance(v float64) {
	if len(s.data) == 0 {
		return
	}
	s.data[s.head] = v
	s.head = (s.head + 1) % len(s.data)
}

// Len returns the number of samples held.
func (s Series) Len() int {
	return len(s.data)
}

// Values returns the samples oldest first.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.data))
	for i := range out {
		out[i] = s.data[(s.head+i)%len(s.data)]
	}
	return out
}

// Last returns the most recently appended sample.
func (s Series) Last() float64 {
	if len(s.data) == 0 {
		return 0
	}
	return s.data[(s.head-1+len(s.data))%len(s.data)]
}

func (s Series) clone() Series {
	data := make([]float64, len(s.data))
	copy(data, s.data)
	return Series{data: data, head: s.head}
}

// SeriesLabels returns the display ticks for the chart axis ("0s", "1s", ...).
// They are fixed after startup and do not track wall-clock time.
func SeriesLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%ds", i)
	}
	return labels
}

// inboundSample is a random base plus half the current bandwidth.
func inboundSample(src Source, bandwidth float64) float64 {
	return src.Float64()*50 + 20 + bandwidth*0.5
}

// outboundSample uses a smaller random range and a 0.3 bandwidth coefficient.
func outboundSample(src Source, bandwidth float64) float64 {
	return src.Float64()*40 + 10 + bandwidth*0.3
}
