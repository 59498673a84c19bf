package charting

import (
	"github.com/fernandosanchezjr/godprng/analytics"
	"time"
)

const TimeLayout = "2006-01-02 15:04:05"

type Point struct {
	Label string
	Value float64
}

// Data holds one x axis and any number of named series over it.
type Data struct {
	X      []string
	Series map[string][]float64
	labels []string
}

func NewData() *Data {
	return &Data{Series: map[string][]float64{}}
}

func (ld *Data) Append(x string, points ...Point) {
	ld.X = append(ld.X, x)
	for _, p := range points {
		if _, found := ld.Series[p.Label]; !found {
			ld.labels = append(ld.labels, p.Label)
		}
		ld.Series[p.Label] = append(ld.Series[p.Label], p.Value)
	}
}

// Labels returns series names in the order they first appeared.
func (ld *Data) Labels() []string {
	return append([]string{}, ld.labels...)
}

// HistoryData lays reports, given newest first, out oldest first.
func HistoryData(reports []*analytics.Report) *Data {
	data := NewData()
	for i := len(reports) - 1; i >= 0; i-- {
		r := reports[i]
		data.Append(formatTime(r.Time),
			Point{"chi-square p", r.ChiSquareP},
			Point{"entropy/8", r.Entropy / 8},
			Point{"correlation", r.SerialCorrelation},
		)
	}
	return data
}

func HistogramData(report *analytics.Report) *Data {
	data := NewData()
	expected := float64(report.Count) / analytics.Bins
	for value, count := range report.Histogram {
		data.Append(byteLabel(value),
			Point{"observed", float64(count)},
			Point{"expected", expected},
		)
	}
	return data
}

func byteLabel(value int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[value>>4], digits[value&0xf]})
}

func formatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}
