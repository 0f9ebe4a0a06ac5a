package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestObserveRoll(t *testing.T) {
	r := NewRecorder()

	r.ObserveRoll("ok", 4, time.Millisecond)
	r.ObserveRoll("ok", 2, time.Millisecond)
	r.ObserveRoll("parse_error", 0, time.Microsecond)
	r.ObserveRoll("too_large", 5000, time.Microsecond)

	if got := testutil.ToFloat64(r.rolls.WithLabelValues("ok")); got != 2 {
		t.Fatalf("ok rolls = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.rolls.WithLabelValues("parse_error")); got != 1 {
		t.Fatalf("parse_error rolls = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.dice); got != 6 {
		t.Fatalf("dice sampled = %v, want 6", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Fatalf("duration series = %d, want 1", got)
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	r := NewRecorder()
	intercept := r.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/dicegoblin.roll.v1.RollService/Roll"}

	_, _ = intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	_, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad roll")
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}

	if got := testutil.ToFloat64(r.requests.WithLabelValues(info.FullMethod, "OK")); got != 1 {
		t.Fatalf("OK requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.requests.WithLabelValues(info.FullMethod, "InvalidArgument")); got != 1 {
		t.Fatalf("InvalidArgument requests = %v, want 1", got)
	}
}

func TestHandlerServesRegistry(t *testing.T) {
	r := NewRecorder()
	r.ObserveRoll("ok", 3, time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	for _, want := range []string{
		`dicegoblin_rolls_total{result="ok"} 1`,
		"dicegoblin_dice_sampled_total 3",
		"dicegoblin_roll_duration_seconds_count 1",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRecordersDoNotShareRegistry(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.ObserveRoll("ok", 1, 0)
	if got := testutil.ToFloat64(b.rolls.WithLabelValues("ok")); got != 0 {
		t.Fatalf("second recorder saw %v rolls, want 0", got)
	}
	if a.Registry() == b.Registry() {
		t.Fatal("expected separate registries")
	}
}
