package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/codecrafted/internal/common"
	pb "github.com/dmitrijs2005/codecrafted/internal/proto"
		"github.com/dmitrijs2005/codecrafted/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Signup(ctx, services.SignupInput{
		Name:     req.GetName(),
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
		Role:     req.GetRole(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", result.User.ID, "role", result.User.Role)
	return authResponse(result), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Login(ctx, services.LoginInput{Email: req.GetEmail(), Password: req.GetPassword()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return authResponse(result), nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.users.Logout(ctx, claims.SessionID()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListCourses(ctx context.Context, _ *pb.ListCoursesRequest) (*pb.CoursesResponse, error) {
	views, err := s.courses.List(ctx)
	return s.coursesResponse(ctx, views, err)
}

func (s *GRPCServer) SearchCourses(ctx context.Context, req *pb.SearchCoursesRequest) (*pb.CoursesResponse, error) {
	views, err := s.courses.Search(ctx, req.GetTerm())
	return s.coursesResponse(ctx, views, err)
}

func (s *GRPCServer) ListPopularCourses(ctx context.Context, req *pb.ListPopularCoursesRequest) (*pb.CoursesResponse, error) {
	views, err := s.courses.Popular(ctx, int(req.GetLimit()))
	return s.coursesResponse(ctx, views, err)
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) coursesResponse(ctx context.Context, views []services.CourseView, err error) (*pb.CoursesResponse, error) {
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Course, 0, len(views))
	for _, v := range views {
		out = append(out, &pb.Course{
			Id:             v.ID,
			Title:          v.Title,
			Description:    v.Description,
			Instructor:     v.Instructor,
			Category:       v.Category,
			Level:          v.Level,
			Price:          v.Price,
			Rating:         v.Rating,
			Students:       v.Students,
			PopularityRank: int32(v.PopularityRank),
			DurationHours:  v.DurationHours,
			ThumbnailUrl:   v.ThumbnailURL,
			Tags:           v.Tags,
		})
	}
	return &pb.CoursesResponse{Courses: out}, nil
}

func authResponse(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		User: &pb.User{
			Id:        r.User.ID,
			Name:      r.User.Name,
			Email:     r.User.Email,
			Role:      r.User.Role,
			AvatarUrl: r.AvatarURL,
		},
		AccessToken: r.AccessToken,
	}
}

// toStatus maps service errors to gRPC codes. Internal details are logged,
// never returned.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "account already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}
