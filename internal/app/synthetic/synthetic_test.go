package synthetic

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"metroems/internal/app/logtail"
	"metroems/internal/app/telemetry"
	"metroems/internal/config"
)

func newTestGenerator(seed uint64, now time.Time) *Generator {
	return NewGeneratorWith(config.DefaultConfig().Synthetic, rand.New(rand.NewPCG(seed, seed)), func() time.Time { return now })
}

func Test_Generator_Sample(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	g := newTestGenerator(1, now)

	for i := 0; i < 1000; i++ {
		s := g.Sample()

		assert.Equal(t, now, s.Timestamp)
		assert.Equal(t, telemetry.SourceSynthetic, s.Source)
		assert.GreaterOrEqual(t, s.SignalStrength, 70.0)
		assert.LessOrEqual(t, s.SignalStrength, 80.0)
		assert.GreaterOrEqual(t, s.SNR, 40.0)
		assert.LessOrEqual(t, s.SNR, 50.0)
		assert.GreaterOrEqual(t, s.TxMbps, 120.0)
		assert.Less(t, s.TxMbps, 160.0)
		assert.Equal(t, float64(int(s.TxMbps)), s.TxMbps)
		assert.GreaterOrEqual(t, s.RxMbps, 100.0)
		assert.Less(t, s.RxMbps, 130.0)
		assert.Equal(t, float64(int(s.RxMbps)), s.RxMbps)
	}
}

func Test_Generator_Fallback(t *testing.T) {
	g := newTestGenerator(2, time.Now())

	assert.Equal(t, telemetry.SourceFallback, g.Fallback().Source)
}

func Test_Generator_Baseline(t *testing.T) {
	g := newTestGenerator(3, time.Now())
	b := g.Baseline()

	assert.Equal(t, 75.0, b.SignalStrength)
	assert.Equal(t, 45.0, b.SNR)
	assert.Equal(t, 140.0, b.TxMbps)
	assert.Equal(t, 115.0, b.RxMbps)
}

func Test_Generator_Entry(t *testing.T) {
	t.Run("timestamp carries milliseconds", func(t *testing.T) {
		now := time.Date(2026, 10, 18, 12, 0, 1, 250*int(time.Millisecond), time.UTC)
		g := newTestGenerator(4, now)

		assert.Equal(t, "2026-10-18 12:00:01.250", g.Entry().Time)
	})

	t.Run("warn ratio follows probability", func(t *testing.T) {
		g := newTestGenerator(5, time.Now())

		warn := 0
		for i := 0; i < 10000; i++ {
			e := g.Entry()

			switch e.Level {
			case logtail.LevelWarn:
				warn++
				assert.Equal(t, WarnMessage, e.Message)
			case logtail.LevelInfo:
				assert.Equal(t, InfoMessage, e.Message)
			default:
				t.Fatalf("unexpected level %s", e.Level)
			}
		}

		assert.InDelta(t, 1000, warn, 200)
	})

	t.Run("zero probability never warns", func(t *testing.T) {
		ranges := config.DefaultConfig().Synthetic
		ranges.WarnProbability = 0

		g := NewGeneratorWith(ranges, rand.New(rand.NewPCG(6, 6)), time.Now)
		for i := 0; i < 100; i++ {
			assert.Equal(t, logtail.LevelInfo, g.Entry().Level)
		}
	})
}

func Test_Generator_DegenerateRange(t *testing.T) {
	ranges := config.DefaultConfig().Synthetic
	ranges.Tx = config.Range{Min: 100, Max: 100}

	g := NewGeneratorWith(ranges, rand.New(rand.NewPCG(7, 7)), time.Now)

	assert.Equal(t, 100.0, g.Sample().TxMbps)
}
