// Package grpc exposes the course API over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/codecrafted/internal/logging"
	pb "github.com/dmitrijs2005/codecrafted/internal/proto"
	"github.com/dmitrijs2005/codecrafted/internal/server/auth"
	"github.com/dmitrijs2005/codecrafted/internal/server/metrics"
	"github.com/dmitrijs2005/codecrafted/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Signup(ctx context.Context, in services.SignupInput) (*services.AuthResult, error)
	Login(ctx context.Context, in services.LoginInput) (*services.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

type CourseService interface {
	List(ctx context.Context) ([]services.CourseView, error)
	Search(ctx context.Context, term string) ([]services.CourseView, error)
	Popular(ctx context.Context, limit int) ([]services.CourseView, error)
}

type GRPCServer struct {
	pb.UnimplementedCourseServiceServer

	address string
	users   UserService
	courses CourseService
	metrics *metrics.Metrics
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, cs CourseService, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		courses: cs,
		metrics: m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metrics.UnaryInterceptor,
		s.loggingInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterCourseServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
