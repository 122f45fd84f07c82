package synthetic

import (
	"math"
	"math/rand/v2"
	"time"

	"metroems/internal/app/logtail"
	"metroems/internal/app/telemetry"
	"metroems/internal/config"
)

// EntryTimeFormat carries milliseconds so consecutive entries never share a timestamp
const EntryTimeFormat = "2006-01-02 15:04:05.000"

// Messages used for generated log entries
const (
	WarnMessage = "RSSI below optimal threshold"
	InfoMessage = "Link stable"
)

// Generator produces plausible readings and log lines when no device session is usable
type Generator struct {
	ranges config.Synthetic
	rng    *rand.Rand
	now    func() time.Time
}

// NewGenerator creates a generator using the configured ranges
func NewGenerator(cfg *config.Config) *Generator {
	//nolint:gosec // weak random is fine for demo readings
	return NewGeneratorWith(cfg.Synthetic, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now)
}

// NewGeneratorWith creates a generator with an explicit random source and clock
func NewGeneratorWith(ranges config.Synthetic, rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{
		ranges: ranges,
		rng:    rng,
		now:    now,
	}
}

// Sample returns a synthetic reading stamped with the current time.
// Signal and SNR are uniform within their range, TX and RX are integers in [min, max).
func (g *Generator) Sample() telemetry.Sample {
	return g.sample(telemetry.SourceSynthetic)
}

// Fallback returns a synthetic reading marked as standing in for a failed live request
func (g *Generator) Fallback() telemetry.Sample {
	return g.sample(telemetry.SourceFallback)
}

// Baseline returns the midpoint of every range, used before any sample exists
func (g *Generator) Baseline() telemetry.Sample {
	return telemetry.Sample{
		Timestamp:      g.now(),
		SignalStrength: midpoint(g.ranges.Signal),
		SNR:            midpoint(g.ranges.SNR),
		TxMbps:         midpoint(g.ranges.Tx),
		RxMbps:         midpoint(g.ranges.Rx),
		Source:         telemetry.SourceSynthetic,
	}
}

// Entry returns one synthetic log line, WARN with the configured probability
func (g *Generator) Entry() logtail.Entry {
	entry := logtail.Entry{
		Time:    g.now().Format(EntryTimeFormat),
		Level:   logtail.LevelInfo,
		Message: InfoMessage,
	}

	if g.rng.Float64() < g.ranges.WarnProbability {
		entry.Level = logtail.LevelWarn
		entry.Message = WarnMessage
	}

	return entry
}

func (g *Generator) sample(source telemetry.Source) telemetry.Sample {
	return telemetry.Sample{
		Timestamp:      g.now(),
		SignalStrength: g.uniform(g.ranges.Signal),
		SNR:            g.uniform(g.ranges.SNR),
		TxMbps:         g.integer(g.ranges.Tx),
		RxMbps:         g.integer(g.ranges.Rx),
		Source:         source,
	}
}

func (g *Generator) uniform(r config.Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

func (g *Generator) integer(r config.Range) float64 {
	lo := math.Ceil(r.Min)
	span := int(math.Ceil(r.Max) - lo)

	if span <= 0 {
		return lo
	}

	return lo + float64(g.rng.IntN(span))
}

func midpoint(r config.Range) float64 {
	return (r.Min + r.Max) / 2
}
