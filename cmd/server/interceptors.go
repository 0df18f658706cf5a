package main

import (
	"context"
	"log/slog"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/essence-api/internal/errors"
)

// logFunc routes middleware logs through slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

// rateLimitInterceptor rejects calls beyond perSecond with
// RESOURCE_EXHAUSTED. The burst equals one second of traffic.
func rateLimitInterceptor(perSecond float64) grpc.UnaryServerInterceptor {
	if perSecond <= 0 {
		return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			return handler(ctx, req)
		}
	}

	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !limiter.Allow() {
			return nil, errors.ToGRPCError(
				errors.ResourceExhausted("rate limit exceeded").WithMeta("method", info.FullMethod))
		}
		return handler(ctx, req)
	}
}
