package assistant

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"below range", 10, 55, 110, 0},
		{"at low edge", 55, 55, 110, 0},
		{"midpoint", 82.5, 55, 110, 0.5},
		{"at high edge", 110, 55, 110, 1},
		{"above range", 200, 55, 110, 1},
		{"degenerate range", 5, 3, 3, 0},
		{"nan", math.NaN(), 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.v, tt.lo, tt.hi); !almostEqual(got, tt.want) {
				t.Errorf("normalize(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(1.5, 0, 1); got != 1 {
		t.Errorf("clamp(1.5) = %v, want 1", got)
	}
	if got := clamp(-0.2, 0, 1); got != 0 {
		t.Errorf("clamp(-0.2) = %v, want 0", got)
	}
	if got := clamp(0.4, 0, 1); got != 0.4 {
		t.Errorf("clamp(0.4) = %v, want 0.4", got)
	}
}

// The default context produces a fixed metric set; these values are a
// regression fixture.
func TestComputeMetricsDefault(t *testing.T) {
	m := ComputeMetrics(DefaultContext(testNow))

	fixtures := []struct {
		name string
		got  float64
		want float64
	}{
		{"HeartRateNorm", m.HeartRateNorm, 31.0 / 55.0},
		{"UnreadNorm", m.UnreadNorm, 47.0 / 120.0},
		{"SentimentNorm", m.SentimentNorm, 0.325},
		{"LastBreakNorm", m.LastBreakNorm, 0.64},
		{"MovementNorm", m.MovementNorm, 0.835},
		{"SleepDebt", m.SleepDebt, 0.42},
		{"HydrationDebt", m.HydrationDebt, 0.5},
		{"CalendarLoad", m.CalendarLoad, 0.82},
		{"CognitiveLoad", m.CognitiveLoad, 0.546333333},
		{"Fatigue", m.Fatigue, 0.57575},
		{"FocusReadiness", m.FocusReadiness, 0.440429167},
		{"BufferTime", m.BufferTime, 0.18},
	}
	for _, f := range fixtures {
		if !almostEqual(f.got, f.want) {
			t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
		}
	}
}

func TestComputeMetricsCalm(t *testing.T) {
	m := ComputeMetrics(calmContext())

	if !almostEqual(m.CognitiveLoad, 0.2275) {
		t.Errorf("CognitiveLoad = %v, want 0.2275", m.CognitiveLoad)
	}
	if !almostEqual(m.Fatigue, 0.061666667) {
		t.Errorf("Fatigue = %v, want 0.061666667", m.Fatigue)
	}
	if !almostEqual(m.FocusReadiness, 0.847125) {
		t.Errorf("FocusReadiness = %v, want 0.847125", m.FocusReadiness)
	}
	if !almostEqual(m.BufferTime, 0.9) {
		t.Errorf("BufferTime = %v, want 0.9", m.BufferTime)
	}
}

func TestComputeMetricsRanges(t *testing.T) {
	extremes := []LifeContext{
		Sanitize(&ContextPatch{
			HeartRate:           fptr(200),
			HRV:                 fptr(10),
			CalendarLoad:        fptr(1),
			UnreadEmails:        iptr(1000),
			SleepQuality:        fptr(0),
			StepsToday:          iptr(0),
			LastBreakMinutesAgo: iptr(600),
			SentimentScore:      fptr(1),
			Hydration:           fptr(0),
		}, testNow),
		Sanitize(&ContextPatch{
			HeartRate:           fptr(40),
			HRV:                 fptr(120),
			CalendarLoad:        fptr(0),
			UnreadEmails:        iptr(0),
			SleepQuality:        fptr(1),
			StepsToday:          iptr(20000),
			LastBreakMinutesAgo: iptr(0),
			SentimentScore:      fptr(-1),
			Hydration:           fptr(1),
		}, testNow),
	}

	for _, ctx := range extremes {
		m := ComputeMetrics(ctx)
		composites := []float64{m.CognitiveLoad, m.Fatigue, m.FocusReadiness, m.BufferTime}
		for i, v := range composites {
			if v < 0 || v > 1 {
				t.Errorf("composite %d = %v, outside [0,1]", i, v)
			}
		}
	}
}

// calmContext is the low-load fixture: everything in the green.
func calmContext() LifeContext {
	return Sanitize(&ContextPatch{
		HeartRate:           fptr(60),
		HRV:                 fptr(80),
		CalendarLoad:        fptr(0.1),
		UnreadEmails:        iptr(0),
		SleepQuality:        fptr(0.9),
		StepsToday:          iptr(8000),
		LastBreakMinutesAgo: iptr(5),
		SentimentScore:      fptr(0.5),
		Hydration:           fptr(0.9),
	}, testNow)
}
