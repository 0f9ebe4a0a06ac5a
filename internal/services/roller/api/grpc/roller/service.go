// Package roller exposes dice rolls over gRPC.
package roller

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/louisbranch/dicegoblin/internal/command"
	"github.com/louisbranch/dicegoblin/internal/dice"
	apperrors "github.com/louisbranch/dicegoblin/internal/platform/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Metadata keys carried on Roll calls.
const (
	// HeaderRollID is the response header holding the roll id.
	HeaderRollID = "x-roll-id"
	// HeaderRollSeed holds the roll seed. Clients send it to replay a roll
	// and servers return it on every successful roll.
	HeaderRollSeed = "x-roll-seed"
)

// Roller rolls a request.
type Roller interface {
	Roll(ctx context.Context, req dice.Request) (dice.Outcome, error)
}

// Service implements RollService.
type Service struct {
	roller Roller
}

// NewService creates a RollService backed by roller.
func NewService(roller Roller) *Service {
	return &Service{roller: roller}
}

// Roll evaluates the expression in the request.
func (s *Service) Roll(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "roll request is required")
	}
	if s == nil || s.roller == nil {
		return nil, status.Error(codes.Internal, "roller is not configured")
	}

	expression := strings.TrimSpace(in.GetValue())
	if expression == "" {
		return nil, apperrors.New(apperrors.CodeRollExpressionEmpty, "roll expression is required").
			ToGRPCStatus(command.UnknownMessage)
	}
	seed, err := requestSeed(ctx)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	outcome, err := s.roller.Roll(ctx, dice.Request{Expression: expression, Seed: seed})
	if err != nil {
		return nil, rollStatus(err)
	}

	header := metadata.Pairs(
		HeaderRollID, outcome.ID,
		HeaderRollSeed, strconv.FormatInt(outcome.Seed, 10),
	)
	if err := grpc.SetHeader(ctx, header); err != nil {
		log.Printf("set roll %s header: %v", outcome.ID, err)
	}
	return wrapperspb.String(outcome.String()), nil
}

func requestSeed(ctx context.Context) (*int64, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, nil
	}
	values := md.Get(HeaderRollSeed)
	if len(values) == 0 {
		return nil, nil
	}
	seed, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
	if err != nil {
		return nil, errors.New("roll seed must be an integer")
	}
	return &seed, nil
}

// rollStatus converts a roll failure into a gRPC status carrying the same
// user message the chat replies use.
func rollStatus(err error) error {
	switch {
	case errors.Is(err, dice.ErrParse):
		return apperrors.Wrap(apperrors.CodeRollParseFailed, err.Error(), err).
			ToGRPCStatus(command.ParseFailedMessage)
	case errors.Is(err, dice.ErrTooLarge):
		return apperrors.Wrap(apperrors.CodeRollTooLarge, err.Error(), err).
			ToGRPCStatus(command.TooLargeMessage)
	case errors.Is(err, dice.ErrSeedUnavailable):
		return apperrors.Wrap(apperrors.CodeSeedUnavailable, err.Error(), err).
			ToGRPCStatus(command.FailedMessage)
	default:
		return apperrors.Wrap(apperrors.CodeUnknown, err.Error(), err).
			ToGRPCStatus(command.FailedMessage)
	}
}
