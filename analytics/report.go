package analytics

import (
	"fmt"
	"github.com/fernandosanchezjr/godprng/utils"
	log "github.com/sirupsen/logrus"
	"time"
)

const Bins = 256

type Report struct {
	Source            string
	Time              time.Time
	Seed              *uint64
	Digest            string
	Count             int64
	Histogram         [Bins]int64
	Entropy           float64
	ChiSquare         float64
	ChiSquareP        float64
	Mean              float64
	MonteCarloPi      float64
	MonteCarloPiError float64
	SerialCorrelation float64
}

// Passes reports whether the chi-square p-value falls inside [alpha, 1-alpha].
func (r *Report) Passes(alpha float64) bool {
	return r.Count > 0 && r.ChiSquareP >= alpha && r.ChiSquareP <= 1-alpha
}

func (r *Report) Fields() log.Fields {
	fields := log.Fields{
		"source":      r.Source,
		"bytes":       utils.ByteCount(r.Count),
		"entropy":     fmt.Sprintf("%.6f", r.Entropy),
		"chiSquare":   fmt.Sprintf("%.2f", r.ChiSquare),
		"p":           fmt.Sprintf("%.4f", r.ChiSquareP),
		"mean":        fmt.Sprintf("%.4f", r.Mean),
		"pi":          fmt.Sprintf("%.6f", r.MonteCarloPi),
		"piError":     fmt.Sprintf("%.2f%%", r.MonteCarloPiError),
		"correlation": fmt.Sprintf("%.6f", r.SerialCorrelation),
	}
	if r.Seed != nil {
		fields["seed"] = *r.Seed
	}
	if r.Digest != "" {
		fields["digest"] = r.Digest
	}
	return fields
}
