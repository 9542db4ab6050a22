package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/common"
	pb "github.com/dmitrijs2005/codecrafted/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.CourseServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; the first RPC establishes the connection.
// A positive timeout bounds every call.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewCourseServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Signup(ctx context.Context, profile models.SignupProfile) (*models.UserProfile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.SignupRequest{
		Name:     profile.Name,
		Email:    profile.Email,
		Password: profile.Password,
		Role:     string(profile.Role),
	}
	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.acceptAuth(resp)
}

func (s *GRPCClient) Login(ctx context.Context, credentials models.Credentials) (*models.UserProfile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.LoginRequest{Email: credentials.Email, Password: credentials.Password}
	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.acceptAuth(resp)
}

func (s *GRPCClient) acceptAuth(resp *pb.AuthResponse) (*models.UserProfile, error) {
	user, err := userFromWire(resp.GetUser())
	if err != nil {
		return nil, err
	}
	s.setToken(resp.GetAccessToken())
	return user, nil
}

// Logout revokes the server session. The local token is dropped whatever
// the outcome, so a failed call never leaves the client half logged in.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if s.token() == "" {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{})
	s.setToken("")
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListAll(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListCourses(ctx, &pb.ListCoursesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return coursesFromWire(resp.GetCourses()), nil
}

func (s *GRPCClient) Search(ctx context.Context, term string) ([]models.Course, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.SearchCourses(ctx, &pb.SearchCoursesRequest{Term: term})
	if err != nil {
		return nil, s.mapError(err)
	}
	return coursesFromWire(resp.GetCourses()), nil
}

func (s *GRPCClient) ListPopular(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListPopularCourses(ctx, &pb.ListPopularCoursesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return coursesFromWire(resp.GetCourses()), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromWire(u *pb.User) (*models.UserProfile, error) {
	if u == nil {
		return nil, fmt.Errorf("malformed response: missing user")
	}
	role, err := models.ParseRole(u.GetRole())
	if err != nil {
		return nil, fmt.Errorf("malformed user in response: %w", err)
	}
	return &models.UserProfile{
		ID:        u.GetId(),
		Name:      u.GetName(),
		Email:     u.GetEmail(),
		Role:      role,
		AvatarRef: u.GetAvatarUrl(),
	}, nil
}

func coursesFromWire(in []*pb.Course) []models.Course {
	out := make([]models.Course, 0, len(in))
	for _, c := range in {
		out = append(out, models.Course{
			ID:             c.GetId(),
			Title:          c.GetTitle(),
			Description:    c.GetDescription(),
			Instructor:     c.GetInstructor(),
			Category:       c.GetCategory(),
			Level:          c.GetLevel(),
			Price:          c.GetPrice(),
			Rating:         c.GetRating(),
			Students:       c.GetStudents(),
			PopularityRank: int(c.GetPopularityRank()),
			DurationHours:  c.GetDurationHours(),
			Thumbnail:      c.GetThumbnailUrl(),
			Tags:           c.GetTags(),
		})
	}
	return out
}
