package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/folioadmin/internal/client/inbox"
	"github.com/iudanet/folioadmin/internal/client/resource"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// Collections lists every counted collection in display order.
var Collections = append(resource.Names(), inbox.Collection)

// Counts is one snapshot of the summary counts keyed by collection name.
// For messages only unread ones are counted.
type Counts map[string]int

// Aggregator fills the dashboard summary. It implements ui.CountsRefresher.
type Aggregator struct {
	ui     *ui.Context
	view   ui.CountsView
	logger *slog.Logger
}

var _ ui.CountsRefresher = (*Aggregator)(nil)

// NewAggregator создает агрегатор счетчиков дашборда
func NewAggregator(uictx *ui.Context, view ui.CountsView) *Aggregator {
	return &Aggregator{
		ui:     uictx,
		view:   view,
		logger: slog.Default().With("component", "dashboard"),
	}
}

// Refresh fetches all collections concurrently. A failed fetch counts as 0 and
// never affects the other counts.
func (a *Aggregator) Refresh(ctx context.Context) Counts {
	results := make([]int, len(Collections))

	// ошибки поглощаются внутри задач, поэтому Wait всегда возвращает nil
	var g errgroup.Group
	for i, name := range Collections {
		g.Go(func() error {
			results[i] = a.count(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	counts := make(Counts, len(Collections))
	for i, name := range Collections {
		counts[name] = results[i]
	}
	return counts
}

// RefreshCounts refreshes and renders every count.
func (a *Aggregator) RefreshCounts(ctx context.Context) {
	counts := a.Refresh(ctx)
	if a.view == nil {
		return
	}
	for _, name := range Collections {
		a.view.SetCount(name, counts[name])
	}
}

func (a *Aggregator) count(ctx context.Context, name string) int {
	resp, err := a.ui.Gateway.Get(ctx, "/api/"+name)
	if err != nil {
		a.logger.Warn("failed to fetch collection", "collection", name, "error", err)
		return 0
	}
	records, ok := resource.ParseResponse(resp)
	if !ok {
		a.logger.Warn("failed to fetch collection", "collection", name, "status", resp.StatusCode)
		return 0
	}

	if name != inbox.Collection {
		return len(records)
	}
	unread := 0
	for _, r := range records {
		if !r.Bool("read") {
			unread++
		}
	}
	return unread
}
