package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin(PhaseTokenize)
	timer.End(idx, "42 tokens")
	timer.End(idx+5, "ignored")
	timer.End(timer.Begin(PhaseValidate), "")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d", len(report.Phases))
	}
	if report.Phases[0].Name != PhaseTokenize || report.Phases[0].Note != "42 tokens" {
		t.Fatalf("unexpected %+v", report.Phases[0])
	}
	summary := timer.Summary()
	if !strings.Contains(summary, "tokenize") || !strings.Contains(summary, "total") {
		t.Fatalf("summary:\n%s", summary)
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	idx := timer.Begin(PhaseSymbols)
	timer.End(idx, "")
	if idx != -1 || len(timer.Report().Phases) != 0 {
		t.Fatalf("nil timer must be inert")
	}
}
