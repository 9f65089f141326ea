package seeder

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGaussianPeaksNearRecentEnd(t *testing.T) {
	b := NewDateBias(date("2023-01-01"), date("2025-09-30"))

	early := b.Gaussian(date("2023-01-15"))
	peak := b.Gaussian(date("2025-03-01"))
	late := b.Gaussian(date("2025-09-30"))

	assert.Greater(t, peak, late)
	assert.Greater(t, late, early)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, early, 0.0)
}

func TestSampleSkewsTowardRecentDates(t *testing.T) {
	start, end := date("2023-01-01"), date("2025-09-30")
	b := NewDateBias(start, end)
	rng := rand.New(rand.NewSource(42))
	mid := start.Add(end.Sub(start) / 2)

	recent := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		if b.Sample(rng).After(mid) {
			recent++
		}
	}
	assert.Greater(t, recent, draws*6/10)
}

func TestSampleFallbackStaysInWindow(t *testing.T) {
	start, end := date("2024-01-01"), date("2024-03-31")
	b := NewDateBias(start, end)
	b.Weight = func(time.Time) float64 { return 0 }
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		d := b.Sample(rng)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))
		assert.Equal(t, d, truncateDay(d))
	}
}

func TestSampleFallbackReturnsLastDraw(t *testing.T) {
	start, end := date("2024-01-01"), date("2024-12-31")
	b := NewDateBias(start, end)
	b.Attempts = 3

	var draws []time.Time
	b.Weight = func(t time.Time) float64 {
		draws = append(draws, t)
		return 0
	}

	got := b.Sample(rand.New(rand.NewSource(9)))
	assert.Len(t, draws, 3)
	assert.Equal(t, truncateDay(draws[2]), got)
}

func TestSampleSingleDayWindow(t *testing.T) {
	day := date("2024-02-29")
	b := NewDateBias(day, day)

	assert.Equal(t, day, b.Sample(rand.New(rand.NewSource(3))))
}
