package grpc

import (
	"context"
	"errors"
	"path"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/common"
	pb "github.com/dmitrijs2005/codecrafted/internal/proto"
	"github.com/dmitrijs2005/codecrafted/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// protectedMethods require a valid access token.
var protectedMethods = map[string]bool{
	pb.CourseService_Logout_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := s.users.Authenticate(ctx, accessToken)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				return nil, status.Error(codes.Unauthenticated, "token expired")
			case errors.Is(err, common.ErrInvalidToken):
				return nil, status.Error(codes.Unauthenticated, "invalid token")
			}
			s.logger.Error(ctx, "token check failed", "error", err)
			return nil, status.Error(codes.Internal, "internal error")
		}

		ctx = context.WithValue(ctx, claimsKey, claims)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{"method", path.Base(info.FullMethod), "code", status.Code(err).String(), "duration", time.Since(start)}
	if err != nil {
		s.logger.Warn(ctx, "rpc failed", append(args, "error", err)...)
	} else {
		s.logger.Debug(ctx, "rpc", args...)
	}
	return resp, err
}

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}
