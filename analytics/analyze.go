// Package analytics computes ent-style randomness statistics over byte streams.
package analytics

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"io/ioutil"
	"math"
	"time"
)

const (
	// MonteCarloCoordBytes is the width of one coordinate; a point takes two.
	MonteCarloCoordBytes = 3

	monteCarloRadius = float64(1<<(8*MonteCarloCoordBytes) - 1)
)

var byteValues = func() []float64 {
	values := make([]float64, Bins)
	for i := range values {
		values[i] = float64(i)
	}
	return values
}()

// ChiSquare tests observed counts against a uniform expectation and returns
// the statistic with its upper-tail p-value.
func ChiSquare(observed []float64) (statistic, p float64) {
	if len(observed) < 2 {
		return 0, 1
	}
	var total float64
	for _, o := range observed {
		total += o
	}
	if total == 0 {
		return 0, 1
	}
	expected := total / float64(len(observed))
	for _, o := range observed {
		statistic += (o - expected) * (o - expected) / expected
	}
	p = distuv.ChiSquared{K: float64(len(observed) - 1)}.Survival(statistic)
	return
}

func Analyze(data []byte) *Report {
	r := &Report{Time: time.Now(), Count: int64(len(data))}
	if len(data) == 0 {
		r.ChiSquareP = 1
		return r
	}
	for _, b := range data {
		r.Histogram[b]++
	}
	counts := make([]float64, Bins)
	n := float64(len(data))
	for i, c := range r.Histogram {
		counts[i] = float64(c)
		if c > 0 {
			p := float64(c) / n
			r.Entropy -= p * math.Log2(p)
		}
	}
	r.ChiSquare, r.ChiSquareP = ChiSquare(counts)
	r.Mean = stat.Mean(byteValues, counts)
	r.MonteCarloPi = monteCarloPi(data)
	if r.MonteCarloPi > 0 {
		r.MonteCarloPiError = math.Abs(r.MonteCarloPi-math.Pi) / math.Pi * 100
	}
	r.SerialCorrelation = serialCorrelation(data)
	return r
}

func AnalyzeFile(filePath string) (*Report, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Analyze(data), nil
}

// monteCarloPi treats consecutive 6-byte groups as points in a square and
// counts the ones inside the inscribed quarter circle.
func monteCarloPi(data []byte) float64 {
	const group = 2 * MonteCarloCoordBytes
	var points, inside int
	for i := 0; i+group <= len(data); i += group {
		var x, y float64
		for j := 0; j < MonteCarloCoordBytes; j++ {
			x = x*256 + float64(data[i+j])
			y = y*256 + float64(data[i+MonteCarloCoordBytes+j])
		}
		if x*x+y*y <= monteCarloRadius*monteCarloRadius {
			inside++
		}
		points++
	}
	if points == 0 {
		return 0
	}
	return 4 * float64(inside) / float64(points)
}

// serialCorrelation is the lag-1 correlation with wraparound; zero when undefined.
func serialCorrelation(data []byte) float64 {
	n := float64(len(data))
	var sumProducts, sumSquares, sum float64
	for i, b := range data {
		u := float64(b)
		next := float64(data[(i+1)%len(data)])
		sumProducts += u * next
		sumSquares += u * u
		sum += u
	}
	denominator := n*sumSquares - sum*sum
	if denominator == 0 {
		return 0
	}
	return (n*sumProducts - sum*sum) / denominator
}
