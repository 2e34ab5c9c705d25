package floradex

import (
	"context"
	"errors"
	"testing"
	"time"
)

const testQuiet = 10 * time.Millisecond

// waitFor is generous so slow CI machines do not flake.
const waitFor = 2 * time.Second

type delivery struct {
	query  string
	result string
	err    error
}

func recvDelivery(t *testing.T, ch <-chan delivery) delivery {
	t.Helper()
	select {
	case d := <-ch:
		return d
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for delivery")
		return delivery{}
	}
}

func assertNoDelivery(t *testing.T, ch <-chan delivery) {
	t.Helper()
	select {
	case d := <-ch:
		t.Fatalf("unexpected delivery for query %q", d.query)
	case <-time.After(10 * testQuiet):
	}
}

func TestFetchControllerCollapsesBurst(t *testing.T) {
	fetches := make(chan string, 10)
	deliveries := make(chan delivery, 10)

	ctrl := NewFetchController(
		func(_ context.Context, q string) (string, error) {
			fetches <- q
			return "result:" + q, nil
		},
		func(q, r string, err error) {
			deliveries <- delivery{query: q, result: r, err: err}
		},
	).WithQuietPeriod(testQuiet)
	defer ctrl.Stop()

	ctx := context.Background()
	ctrl.Request(ctx, "a")
	ctrl.Request(ctx, "ar")
	ctrl.Request(ctx, "ara")

	d := recvDelivery(t, deliveries)
	if d.query != "ara" {
		t.Errorf("delivered query = %q, want %q", d.query, "ara")
	}
	if d.result != "result:ara" {
		t.Errorf("delivered result = %q, want %q", d.result, "result:ara")
	}

	// Earlier keystrokes must not have triggered fetches of their own.
	assertNoDelivery(t, deliveries)
	if got := len(fetches); got != 1 {
		t.Errorf("fetch count = %d, want 1", got)
	}
}

func TestFetchControllerDiscardsStaleResponse(t *testing.T) {
	started := make(chan string, 2)
	proceed := map[string]chan struct{}{
		"slow": make(chan struct{}),
		"fast": make(chan struct{}),
	}
	deliveries := make(chan delivery, 2)

	ctrl := NewFetchController(
		func(_ context.Context, q string) (string, error) {
			started <- q
			<-proceed[q]
			return "result:" + q, nil
		},
		func(q, r string, err error) {
			deliveries <- delivery{query: q, result: r, err: err}
		},
	).WithQuietPeriod(testQuiet)
	defer ctrl.Stop()

	ctx := context.Background()
	ctrl.Request(ctx, "slow")
	if q := <-started; q != "slow" {
		t.Fatalf("first fetch = %q, want %q", q, "slow")
	}

	// A newer request arrives while the first fetch is still in flight.
	ctrl.Request(ctx, "fast")
	if q := <-started; q != "fast" {
		t.Fatalf("second fetch = %q, want %q", q, "fast")
	}
	close(proceed["fast"])

	d := recvDelivery(t, deliveries)
	if d.query != "fast" {
		t.Errorf("delivered query = %q, want %q", d.query, "fast")
	}

	// The stale fetch completes afterwards and must be dropped.
	close(proceed["slow"])
	assertNoDelivery(t, deliveries)
}

func TestFetchControllerStopCancelsPending(t *testing.T) {
	deliveries := make(chan delivery, 1)

	ctrl := NewFetchController(
		func(_ context.Context, q string) (string, error) {
			return "result:" + q, nil
		},
		func(q, r string, err error) {
			deliveries <- delivery{query: q, result: r, err: err}
		},
	).WithQuietPeriod(testQuiet)

	ctrl.Request(context.Background(), "abandoned")
	ctrl.Stop()

	assertNoDelivery(t, deliveries)
}

func TestFetchControllerDeliversFetchError(t *testing.T) {
	wantErr := errors.New("backend unavailable")
	deliveries := make(chan delivery, 1)

	ctrl := NewFetchController(
		func(_ context.Context, _ string) (string, error) {
			return "", wantErr
		},
		func(q, r string, err error) {
			deliveries <- delivery{query: q, result: r, err: err}
		},
	).WithQuietPeriod(testQuiet)
	defer ctrl.Stop()

	ctrl.Request(context.Background(), "ara")

	d := recvDelivery(t, deliveries)
	if !errors.Is(d.err, wantErr) {
		t.Errorf("delivered err = %v, want %v", d.err, wantErr)
	}
}

func TestFetchControllerViewportQueries(t *testing.T) {
	bounds := make(chan Bounds, 1)

	ctrl := NewFetchController(
		func(_ context.Context, v Viewport) ([]Instance, error) {
			return []Instance{{InstanceID: "1"}}, nil
		},
		func(v Viewport, instances []Instance, err error) {
			bounds <- v.Bounds()
		},
	).WithQuietPeriod(testQuiet)
	defer ctrl.Stop()

	ctx := context.Background()
	ctrl.Request(ctx, Viewport{CenterLat: -29.717, CenterLon: -53.715, LatSpan: 0.02, LonSpan: 0.02})
	ctrl.Request(ctx, Viewport{CenterLat: -29.8, CenterLon: -53.8, LatSpan: 0.02, LonSpan: 0.02})

	select {
	case b := <-bounds:
		if b.TopLeft.Lat > -29.75 {
			t.Errorf("delivered bounds for the first viewport: %+v", b)
		}
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for viewport delivery")
	}
}

func TestFetchControllerUsableAfterStop(t *testing.T) {
	deliveries := make(chan delivery, 1)

	ctrl := NewFetchController(
		func(_ context.Context, q string) (string, error) {
			return "result:" + q, nil
		},
		func(q, r string, err error) {
			deliveries <- delivery{query: q, result: r, err: err}
		},
	).WithQuietPeriod(testQuiet)
	defer ctrl.Stop()

	ctrl.Request(context.Background(), "first")
	ctrl.Stop()
	ctrl.Request(context.Background(), "second")

	d := recvDelivery(t, deliveries)
	if d.query != "second" {
		t.Errorf("delivered query = %q, want %q", d.query, "second")
	}
}
