package indicator

import (
	"math"
	"testing"
	"time"

	"TickerScope/internal/model"
)

const tolerance = 1e-9

func seriesFromCloses(closes []float64) *model.PriceSeries {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

func TestSMA_DefinedPositions(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for _, period := range []int{2, 3, 5, 10} {
		out := SMA(closes, period)
		if len(out) != len(closes) {
			t.Fatalf("SMA(%d): length %d, want %d", period, len(out), len(closes))
		}
		defined := 0
		for i, v := range out {
			if v.Valid {
				defined++
				if i < period-1 {
					t.Errorf("SMA(%d): defined too early at index %d", period, i)
				}
			}
		}
		if want := len(closes) - period + 1; defined != want {
			t.Errorf("SMA(%d): %d defined positions, want %d", period, defined, want)
		}
	}
}

func TestSMA_KnownScenario(t *testing.T) {
	// closes [100, 102, 101, 105, 108]: SMA(3) at index 4 = mean(101,105,108)
	out := SMA([]float64{100, 102, 101, 105, 108}, 3)
	want := (101.0 + 105.0 + 108.0) / 3.0
	got := out[4]
	if !got.Valid {
		t.Fatal("SMA(3) undefined at index 4")
	}
	if math.Abs(got.Float64-want) > tolerance {
		t.Errorf("SMA(3)[4]: got %.6f, want %.6f", got.Float64, want)
	}
}

func TestSMA_WindowLargerThanSeries(t *testing.T) {
	out := SMA([]float64{1, 2, 3}, 10)
	for i, v := range out {
		if v.Valid {
			t.Errorf("expected all-undefined series, index %d defined", i)
		}
	}
}

func TestEMA_SeedEqualsSMA(t *testing.T) {
	closes := []float64{100, 102, 101, 105, 108, 110, 111}
	period := 5
	ema := EMA(closes, period)
	sma := SMA(closes, period)

	for i := 0; i < period-1; i++ {
		if ema[i].Valid {
			t.Errorf("EMA defined too early at index %d", i)
		}
	}
	if !ema[period-1].Valid || !sma[period-1].Valid {
		t.Fatal("seed position undefined")
	}
	if math.Abs(ema[period-1].Float64-sma[period-1].Float64) > tolerance {
		t.Errorf("EMA seed %.6f != SMA %.6f", ema[period-1].Float64, sma[period-1].Float64)
	}
}

func TestEMA_TracksRecentCloseForTrendingData(t *testing.T) {
	// Steadily rising closes: EMA should sit closer to the latest close than SMA.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)*2
	}
	period := 10
	ema := EMA(closes, period)
	sma := SMA(closes, period)
	last := len(closes) - 1
	lastClose := closes[last]

	emaDist := math.Abs(lastClose - ema[last].Float64)
	smaDist := math.Abs(lastClose - sma[last].Float64)
	if emaDist >= smaDist {
		t.Errorf("EMA distance %.4f not closer than SMA distance %.4f", emaDist, smaDist)
	}
}

func TestEMA_Recurrence(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15}
	period := 3
	alpha := 2.0 / float64(period+1)
	out := EMA(closes, period)

	prev := (10.0 + 11.0 + 12.0) / 3.0
	for i := period; i < len(closes); i++ {
		prev = closes[i]*alpha + prev*(1-alpha)
		if math.Abs(out[i].Float64-prev) > tolerance {
			t.Errorf("EMA[%d]: got %.9f, want %.9f", i, out[i].Float64, prev)
		}
	}
}

func TestRSI_Bounds(t *testing.T) {
	// Alternating gains and losses of varying size.
	closes := []float64{100, 103, 101, 106, 102, 108, 104, 111, 105, 113,
		106, 115, 108, 118, 110, 120, 112, 123, 114, 125}
	out := RSI(closes, 14)
	for i, v := range out {
		if !v.Valid {
			if i >= 14 {
				t.Errorf("RSI undefined at index %d", i)
			}
			continue
		}
		if i < 14 {
			t.Errorf("RSI defined too early at index %d", i)
		}
		if v.Float64 < 0 || v.Float64 > 100 {
			t.Errorf("RSI[%d] = %.4f out of [0,100]", i, v.Float64)
		}
	}
}

func TestRSI_AllGainsIs100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out := RSI(closes, 14)
	for i := 14; i < len(out); i++ {
		if !out[i].Valid || out[i].Float64 != 100 {
			t.Errorf("RSI[%d]: expected exactly 100 with zero average loss, got %v", i, out[i])
		}
	}
}

func TestRSI_ConstantPriceIs100(t *testing.T) {
	// No change means zero average loss, so 100 by definition.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 50
	}
	out := RSI(closes, 14)
	if !out[19].Valid || out[19].Float64 != 100 {
		t.Errorf("expected RSI=100 on flat series, got %v", out[19])
	}
}

func TestMACD_HistogramIdentity(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/5)
	}
	line, signal, hist := MACDLines(closes, 12, 26, 9)
	for i := range closes {
		if hist[i].Valid != signal[i].Valid {
			t.Errorf("index %d: histogram defined=%v but signal defined=%v", i, hist[i].Valid, signal[i].Valid)
		}
		if !hist[i].Valid {
			continue
		}
		want := line[i].Float64 - signal[i].Float64
		if math.Abs(hist[i].Float64-want) > tolerance {
			t.Errorf("hist[%d]: got %.9f, want %.9f", i, hist[i].Float64, want)
		}
	}
}

func TestMACD_DefinedPositions(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	line, signal, _ := MACDLines(closes, 12, 26, 9)

	// Line defined once the slow EMA (26) is.
	for i := 0; i < 25; i++ {
		if line[i].Valid {
			t.Errorf("MACD line defined too early at %d", i)
		}
	}
	if !line[25].Valid {
		t.Error("MACD line undefined at index 25")
	}
	// Signal needs 9 defined MACD points: first at 25+9-1 = 33.
	for i := 0; i < 33; i++ {
		if signal[i].Valid {
			t.Errorf("signal defined too early at %d", i)
		}
	}
	if !signal[33].Valid {
		t.Error("signal undefined at index 33")
	}
}

func TestCompute_RequestedSet(t *testing.T) {
	ps := seriesFromCloses([]float64{100, 102, 101, 105, 108})
	out := Compute(ps, []model.IndicatorName{model.SMA20, model.RSI14})
	if len(out) != 2 {
		t.Fatalf("expected 2 series, got %d", len(out))
	}
	for name, s := range out {
		if len(s.Values) != ps.Len() {
			t.Errorf("%s: length %d, want %d", name, len(s.Values), ps.Len())
		}
		// Series shorter than every window: entirely undefined, no fault.
		for i, v := range s.Values {
			if v.Valid {
				t.Errorf("%s: unexpectedly defined at %d", name, i)
			}
		}
	}
}

func TestCompute_MACDExpandsToThreeSeries(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out := Compute(seriesFromCloses(closes), []model.IndicatorName{model.MACD})
	for _, name := range []model.IndicatorName{model.MACD, model.MACDSignal, model.MACDHistogram} {
		if _, ok := out[name]; !ok {
			t.Errorf("missing %s in result", name)
		}
	}
}

func TestCompute_ConstantPriceMovingAverages(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 42
	}
	ps := seriesFromCloses(closes)
	out := Compute(ps, model.StandardIndicators())
	for _, name := range []model.IndicatorName{model.SMA20, model.SMA50, model.EMA20, model.EMA50} {
		last := out[name].Last()
		if !last.Valid {
			t.Errorf("%s undefined on constant series", name)
			continue
		}
		if math.Abs(last.Float64-42) > tolerance {
			t.Errorf("%s: got %.6f, want 42", name, last.Float64)
		}
	}
}
