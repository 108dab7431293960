package middleware

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/volunteer-server/internal/logger"
)

// NewRecovery returns an interceptor turning handler panics into codes.Internal.
func NewRecovery(logger *logger.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("gRPC handler panicked",
			"panic", p)
		return status.Error(codes.Internal, "internal server error")
	}))
}
