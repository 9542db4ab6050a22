package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/common"
	pb "github.com/dmitrijs2005/codecrafted/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake rpc client
 *************/

type fakeRPC struct {
	lastSignup *pb.SignupRequest
	lastLogin  *pb.LoginRequest
	lastSearch *pb.SearchCoursesRequest

	authResp *pb.AuthResponse
	authErr  error

	logoutCalls int
	logoutErr   error

	coursesResp *pb.CoursesResponse
	coursesErr  error

	pingResp *pb.PingResponse
	pingErr  error
}

func (f *fakeRPC) Signup(ctx context.Context, in *pb.SignupRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastSignup = in
	return f.authResp, f.authErr
}
func (f *fakeRPC) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastLogin = in
	return f.authResp, f.authErr
}
func (f *fakeRPC) Logout(ctx context.Context, in *pb.LogoutRequest, opts ...grpc.CallOption) (*pb.LogoutResponse, error) {
	f.logoutCalls++
	return &pb.LogoutResponse{}, f.logoutErr
}
func (f *fakeRPC) ListCourses(ctx context.Context, in *pb.ListCoursesRequest, opts ...grpc.CallOption) (*pb.CoursesResponse, error) {
	return f.coursesResp, f.coursesErr
}
func (f *fakeRPC) SearchCourses(ctx context.Context, in *pb.SearchCoursesRequest, opts ...grpc.CallOption) (*pb.CoursesResponse, error) {
	f.lastSearch = in
	return f.coursesResp, f.coursesErr
}
func (f *fakeRPC) ListPopularCourses(ctx context.Context, in *pb.ListPopularCoursesRequest, opts ...grpc.CallOption) (*pb.CoursesResponse, error) {
	return f.coursesResp, f.coursesErr
}
func (f *fakeRPC) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func newTestClient(f *fakeRPC) *GRPCClient {
	return &GRPCClient{client: f, timeout: time.Second}
}

func TestGRPCClient_Signup_StoresTokenAndMapsUser(t *testing.T) {
	f := &fakeRPC{authResp: &pb.AuthResponse{
		User:        &pb.User{Id: "u1", Name: "Ann", Email: "ann@x.com", Role: "student", AvatarUrl: "https://cdn/a.png"},
		AccessToken: "tok-1",
	}}
	c := newTestClient(f)

	user, err := c.Signup(context.Background(), models.SignupProfile{Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: models.RoleStudent})
	require.NoError(t, err)

	assert.Equal(t, &models.UserProfile{ID: "u1", Name: "Ann", Email: "ann@x.com", Role: models.RoleStudent, AvatarRef: "https://cdn/a.png"}, user)
	assert.Equal(t, "tok-1", c.token())
	assert.Equal(t, "student", f.lastSignup.Role)
	assert.Equal(t, "secret1", f.lastSignup.Password)
}

func TestGRPCClient_Login_MalformedRole(t *testing.T) {
	f := &fakeRPC{authResp: &pb.AuthResponse{User: &pb.User{Id: "u1", Role: "admin"}, AccessToken: "tok"}}
	c := newTestClient(f)

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)
	assert.Empty(t, c.token(), "token must not be kept for a rejected response")
}

func TestGRPCClient_Login_MissingUser(t *testing.T) {
	f := &fakeRPC{authResp: &pb.AuthResponse{AccessToken: "tok"}}
	c := newTestClient(f)

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)
	assert.Empty(t, c.token())
}

func TestGRPCClient_Login_Unauthenticated(t *testing.T) {
	f := &fakeRPC{authErr: status.Error(codes.Unauthenticated, "bad credentials")}
	c := newTestClient(f)

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "nope123"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "a@b.co", f.lastLogin.Email)
}

func TestGRPCClient_Logout(t *testing.T) {
	t.Run("no token means no call", func(t *testing.T) {
		f := &fakeRPC{}
		c := newTestClient(f)
		require.NoError(t, c.Logout(context.Background()))
		assert.Zero(t, f.logoutCalls)
	})

	t.Run("remote failure still drops token", func(t *testing.T) {
		f := &fakeRPC{logoutErr: status.Error(codes.Unavailable, "down")}
		c := newTestClient(f)
		c.setToken("tok")

		err := c.Logout(context.Background())
		require.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, 1, f.logoutCalls)
		assert.Empty(t, c.token())
	})
}

func TestGRPCClient_Courses(t *testing.T) {
	f := &fakeRPC{coursesResp: &pb.CoursesResponse{Courses: []*pb.Course{
		{Id: "1", Title: "Go", Category: "development", Price: 50, ThumbnailUrl: "https://cdn/go.jpg", PopularityRank: 2, Tags: []string{"go"}},
	}}}
	c := newTestClient(f)
	ctx := context.Background()

	all, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "https://cdn/go.jpg", all[0].Thumbnail)
	assert.Equal(t, 2, all[0].PopularityRank)
	assert.Equal(t, []string{"go"}, all[0].Tags)

	_, err = c.Search(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, "go", f.lastSearch.Term)

	popular, err := c.ListPopular(ctx)
	require.NoError(t, err)
	assert.Len(t, popular, 1)
}

func TestGRPCClient_Ping(t *testing.T) {
	c := newTestClient(&fakeRPC{pingResp: &pb.PingResponse{Status: "OK"}})
	require.NoError(t, c.Ping(context.Background()))

	c = newTestClient(&fakeRPC{pingResp: &pb.PingResponse{Status: "DEGRADED"}})
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = newTestClient(&fakeRPC{pingErr: status.Error(codes.DeadlineExceeded, "slow")})
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), ErrAlreadyExists)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)

	err := c.mapError(status.Error(codes.InvalidArgument, "email: Invalid email address"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Invalid email address")

	err = c.mapError(errors.New("boom"))
	assert.Contains(t, err.Error(), "rpc error:")
}

func TestAccessTokenInterceptor(t *testing.T) {
	c := &GRPCClient{}

	var got metadata.MD
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		got, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.CourseService_Ping_FullMethodName, nil, nil, nil, invoker))
	assert.Empty(t, got.Get(common.AccessTokenHeaderName))

	c.setToken("tok-9")
	ctx := metadata.NewOutgoingContext(context.Background(), metadata.Pairs("x-trace", "1"))
	require.NoError(t, c.accessTokenInterceptor(ctx, pb.CourseService_Logout_FullMethodName, nil, nil, nil, invoker))
	assert.Equal(t, []string{"tok-9"}, got.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"1"}, got.Get("x-trace"))
}
