// Package generator synthesizes plausible daily analytics metrics for the
// website (GA4) and ad platform (LinkedIn) profiles. Output depends only on
// the profile, the day offset, the clock and the random source.
package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// TrendWindow is the day offset at which the linear trend factor is 1.
// Offsets closer to today are boosted, older ones are dampened.
const TrendWindow = 30

// Generator produces synthetic metrics from an explicit random source.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// New returns a Generator seeded with seed. A zero seed uses the current
// time, so consecutive runs differ.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// WithClock replaces the clock used to resolve day offsets into dates.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Date returns the UTC calendar day dayOffset days before today.
func (g *Generator) Date(dayOffset int) time.Time {
	y, m, d := g.now().UTC().Date()
	return time.Date(y, m, d-dayOffset, 0, 0, 0, 0, time.UTC)
}

// Now returns the generator clock's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}

// Intn returns a uniform integer in [0,n).
func (g *Generator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

// Token returns a random lowercase base36 string of length n.
func (g *Generator) Token(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	g.mu.Lock()
	defer g.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rnd.Intn(len(alphabet))]
	}
	return string(b)
}

// uniform returns a value drawn uniformly from [lo, lo+width).
func (g *Generator) uniform(lo, width float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rnd.Float64()*width
}

// noise is the ±15% multiplier applied to every profile.
func (g *Generator) noise() float64 {
	return g.uniform(0.85, 0.3)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func weekendFactor(d time.Time, dampen float64) float64 {
	if isWeekend(d) {
		return dampen
	}
	return 1.0
}

func trendFactor(dayOffset int, perDay float64) float64 {
	return 1 + float64(TrendWindow-dayOffset)*perDay
}

func count(v float64) int64 {
	return int64(math.Round(v))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// FormatDay renders d as YYYY-MM-DD.
func FormatDay(d time.Time) string {
	return d.Format(time.DateOnly)
}
