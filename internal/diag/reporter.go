package diag

import "glint/internal/source"

// Reporter это минимальный контракт получения диагностик от проверок.
type Reporter interface {
	Report(code Code, sev Severity, rng source.Range, msg string)
}

// BagReporter это адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

// Report implements Reporter.
func (r BagReporter) Report(code Code, sev Severity, rng source.Range, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, rng, msg))
}
