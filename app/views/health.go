package views

import "context"

// Health probes the table store with the cheapest possible read. It reports
// degradation instead of failing: the supervisor decides what to do with it,
// and request serving never waits on this.
func (a *Assembler) Health(ctx context.Context) string {
	if _, err := a.Store.Table(ctx, tableAuthentication, "A1:B1"); err != nil {
		return "degraded"
	}
	return "ok"
}
