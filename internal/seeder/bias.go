package seeder

import (
	"math"
	"math/rand"
	"time"
)

const (
	defaultBiasAttempts = 10
	biasCenter          = 0.85
	biasSpread          = 0.25
)

// DateBias samples instants in [Start, End] skewed toward the recent end of
// the window. Draws are accepted with probability Weight(t); when every
// attempt is rejected the last uniform draw is returned as is.
type DateBias struct {
	Start    time.Time
	End      time.Time
	Attempts int
	Weight   func(time.Time) float64
}

func NewDateBias(start, end time.Time) *DateBias {
	b := &DateBias{
		Start:    start,
		End:      end,
		Attempts: defaultBiasAttempts,
	}
	b.Weight = b.Gaussian
	return b
}

// Gaussian peaks at 85% of the window and falls off with a spread of 25% of
// the window length, both measured in whole days.
func (b *DateBias) Gaussian(t time.Time) float64 {
	daysFromStart := math.Floor(t.Sub(b.Start).Hours() / 24)
	totalDays := math.Floor(b.End.Sub(b.Start).Hours()/24) + 1
	center := totalDays * biasCenter
	spread := totalDays * biasSpread
	return math.Exp(-math.Pow(daysFromStart-center, 2) / (2 * spread * spread))
}

// Sample draws one order date, truncated to calendar-day granularity.
func (b *DateBias) Sample(rng *rand.Rand) time.Time {
	weight := b.Weight
	if weight == nil {
		weight = b.Gaussian
	}
	attempts := b.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var t time.Time
	for i := 0; i < attempts; i++ {
		t = b.uniform(rng)
		if rng.Float64() < weight(t) {
			return truncateDay(t)
		}
	}
	return truncateDay(t)
}

func (b *DateBias) uniform(rng *rand.Rand) time.Time {
	seconds := int64(b.End.Sub(b.Start) / time.Second)
	if seconds <= 0 {
		return b.Start
	}
	return b.Start.Add(time.Duration(rng.Int63n(seconds+1)) * time.Second)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
