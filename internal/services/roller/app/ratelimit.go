package server

import (
	"context"

	apperrors "github.com/louisbranch/dicegoblin/internal/platform/errors"
	rollerservice "github.com/louisbranch/dicegoblin/internal/services/roller/api/grpc/roller"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
)

const rateLimitedMessage = "Too many rolls at once. Please wait a moment and try again"

// rateLimitInterceptor rejects rolls once limiter runs out of tokens. Health
// checks are never limited and a nil limiter admits every call.
func rateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if limiter != nil && info.FullMethod == rollerservice.RollMethod && !limiter.Allow() {
			return nil, apperrors.New(apperrors.CodeRateLimited, "rate limit exceeded for "+info.FullMethod).
				ToGRPCStatus(rateLimitedMessage)
		}
		return handler(ctx, req)
	}
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
