package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Wrap(CodeRollParseFailed, "parse roll", stderrors.New("boom"))
	if !stderrors.Is(err, New(CodeRollParseFailed, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeRollTooLarge, "parse roll")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(CodeSeedUnavailable, "seed", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(CodeRollTooLarge, "too large"))
	if got := GetCode(wrapped); got != CodeRollTooLarge {
		t.Fatalf("GetCode = %q, want %q", got, CodeRollTooLarge)
	}
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode = %q, want %q", got, CodeUnknown)
	}
}

func TestGRPCCode(t *testing.T) {
	tcs := map[Code]codes.Code{
		CodeRollExpressionEmpty: codes.InvalidArgument,
		CodeRollParseFailed:     codes.InvalidArgument,
		CodeRollTooLarge:        codes.ResourceExhausted,
		CodeRateLimited:         codes.ResourceExhausted,
		CodeSeedUnavailable:     codes.Unavailable,
		CodeUnknown:             codes.Internal,
	}
	for code, want := range tcs {
		if got := code.GRPCCode(); got != want {
			t.Errorf("%s.GRPCCode() = %v, want %v", code, got, want)
		}
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeRollTooLarge, "roll too large", map[string]string{"max_dice": "10"}).
		ToGRPCStatus("Too many dice.")

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status, got %v", err)
	}
	if st.Code() != codes.ResourceExhausted {
		t.Fatalf("status code = %v, want %v", st.Code(), codes.ResourceExhausted)
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeRollTooLarge) || info.GetDomain() != Domain {
		t.Fatalf("unexpected error info: %v", info)
	}
	if info.GetMetadata()["max_dice"] != "10" {
		t.Fatalf("expected metadata to be attached, got %v", info.GetMetadata())
	}
	if localized == nil || localized.GetMessage() != "Too many dice." || localized.GetLocale() != Locale {
		t.Fatalf("unexpected localized message: %v", localized)
	}
}
