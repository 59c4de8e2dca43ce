package dashboard

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/notify"
	"github.com/iudanet/folioadmin/internal/client/ui"
	"github.com/iudanet/folioadmin/internal/testutil"
)

func newAggregator(t *testing.T, backend *testutil.Backend) (*Aggregator, *ui.CountsViewMock, map[string]int) {
	t.Helper()
	rendered := make(map[string]int)
	var mu sync.Mutex
	view := &ui.CountsViewMock{
		SetCountFunc: func(kind string, n int) {
			mu.Lock()
			defer mu.Unlock()
			rendered[kind] = n
		},
	}
	sched := testutil.NewManualScheduler()
	center := notify.NewCenter(nil, sched, 0)
	uictx := &ui.Context{
		Gateway:  api.NewClient(backend.URL(), api.WithNotifier(center), api.WithScheduler(sched)),
		Notifier: center,
	}
	return NewAggregator(uictx, view), view, rendered
}

func seed(backend *testutil.Backend) {
	backend.Seed("skills", map[string]any{"id": "s1"}, map[string]any{"id": "s2"})
	backend.Seed("projects", map[string]any{"id": "p1"})
	backend.Seed("experience", map[string]any{"id": "e1"}, map[string]any{"id": "e2"}, map[string]any{"id": "e3"})
	backend.Seed("blogs", map[string]any{"id": "b1"})
	backend.Seed("education", map[string]any{"id": "ed1"}, map[string]any{"id": "ed2"})
	backend.Seed("messages",
		map[string]any{"id": "m1", "read": false},
		map[string]any{"id": "m2", "read": true},
		map[string]any{"id": "m3"},
	)
}

func TestAggregator_Refresh(t *testing.T) {
	backend := testutil.NewBackend(t)
	seed(backend)
	agg, _, _ := newAggregator(t, backend)

	got := agg.Refresh(context.Background())

	assert.Equal(t, Counts{
		"skills":     2,
		"projects":   1,
		"experience": 3,
		"blogs":      1,
		"education":  2,
		"messages":   2,
	}, got)
	assert.Len(t, backend.Requests(), len(Collections))
}

func TestAggregator_FailedFetchCountsAsZero(t *testing.T) {
	backend := testutil.NewBackend(t)
	seed(backend)
	backend.Override("GET /api/experience", testutil.Status(http.StatusInternalServerError, "Internal Server Error"))
	agg, view, rendered := newAggregator(t, backend)

	agg.RefreshCounts(context.Background())

	assert.Len(t, view.SetCountCalls(), 6)
	assert.Equal(t, map[string]int{
		"skills":     2,
		"projects":   1,
		"experience": 0,
		"blogs":      1,
		"education":  2,
		"messages":   2,
	}, rendered)
}

func TestAggregator_TransportFailure(t *testing.T) {
	backend := testutil.NewBackend(t)
	seed(backend)
	backend.Override("GET /api/messages", testutil.Hijack())
	agg, _, _ := newAggregator(t, backend)

	got := agg.Refresh(context.Background())
	assert.Equal(t, 0, got["messages"])
	assert.Equal(t, 2, got["skills"])
}

func TestAggregator_NonArrayBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Override("GET /api/blogs", testutil.Status(http.StatusOK, `{"error":"oops"}`))
	agg, _, _ := newAggregator(t, backend)

	got := agg.Refresh(context.Background())
	assert.Equal(t, 0, got["blogs"])
}

func TestCollections(t *testing.T) {
	assert.Equal(t, []string{"skills", "projects", "experience", "blogs", "education", "messages"}, Collections)
}
