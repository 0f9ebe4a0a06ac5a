package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/dicegoblin/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("DICE_GOBLIN_OTEL_ENDPOINT", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("DICE_GOBLIN_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("DICE_GOBLIN_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidConfig(t *testing.T) {
	t.Setenv("DICE_GOBLIN_OTEL_ENABLED", "sometimes")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected error for invalid boolean")
	}
	if shutdown == nil {
		t.Fatal("expected no-op shutdown on error")
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	t.Setenv("DICE_GOBLIN_OTEL_ENDPOINT", "http://192.0.2.1:4318")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
