package telemetry

import (
	"time"

	"github.com/tidwall/gjson"
)

// Field aliases accepted from the device-session boundary, in lookup order
var (
	SignalAliases = []string{"signalStrengthPercent", "signal_strength", "signalStrength", "signal"}
	SNRAliases    = []string{"snrDb", "snr", "snr_db"}
	TxAliases     = []string{"txMbps", "tx_rate", "txRate", "tx"}
	RxAliases     = []string{"rxMbps", "rx_rate", "rxRate", "rx"}
)

// Normalize builds a live sample from a raw reading.
// Missing or non-numeric fields keep the value from prev.
func Normalize(raw []byte, prev Sample, now time.Time) Sample {
	doc := gjson.ParseBytes(raw)

	return Sample{
		Timestamp:      now,
		SignalStrength: lookup(doc, SignalAliases, prev.SignalStrength),
		SNR:            lookup(doc, SNRAliases, prev.SNR),
		TxMbps:         lookup(doc, TxAliases, prev.TxMbps),
		RxMbps:         lookup(doc, RxAliases, prev.RxMbps),
		Source:         SourceLive,
	}
}

// lookup returns the first alias holding a number, or fallback when none does
func lookup(doc gjson.Result, aliases []string, fallback float64) float64 {
	if !doc.IsObject() {
		return fallback
	}

	for _, alias := range aliases {
		if number, ok := numeric(doc.Get(alias)); ok {
			return number
		}
	}

	return fallback
}

// numeric accepts json numbers and numeric strings
func numeric(value gjson.Result) (float64, bool) {
	switch value.Type {
	case gjson.Number:
		return value.Num, true
	case gjson.String:
		parsed := gjson.Parse(value.Str)
		if parsed.Type == gjson.Number {
			return parsed.Num, true
		}
	}

	return 0, false
}
