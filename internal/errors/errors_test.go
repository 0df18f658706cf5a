package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/essence-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "item not found",
			expected: "NOT_FOUND: item not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "runs must be positive",
			expected: "INVALID_ARGUMENT: runs must be positive",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load ownership")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load ownership", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to load ownership: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("no search cached").WithMeta("player_id", "p1")
	wrapped := errors.Wrapf(baseErr, "failed to get search for %s", "p1")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to get search for p1", wrapped.Message)
	s.Equal("p1", wrapped.Meta["player_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("redis down").WithMeta("addr", "localhost:6379")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("localhost:6379", wrapped.Meta["addr"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
	s.False(errors.Is(errors.NotFound("a"), errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetters() {
	stdErr := fmt.Errorf("standard error")

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Equal("", errors.GetMessage(nil))
	s.Nil(errors.GetMeta(stdErr))
	s.Equal("v", errors.GetMeta(errors.Internal("x").WithMeta("k", "v"))["k"])
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.NotFoundf("item %s not found", "Sword-Steel Echo").
		WithMeta("item_name", "Sword-Steel Echo")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("item Sword-Steel Echo not found", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Equal("Sword-Steel Echo", errors.GetMeta(back)["item_name"])
}

func (s *ErrorsTestSuite) TestGRPCMetaFallsBackToString() {
	err := errors.InvalidArgument("bad").WithMeta("fields", map[string][]string{"runs": {"is required"}})

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal("map[runs:[is required]]", errors.GetMeta(back)["fields"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassthrough() {
	s.Nil(errors.ToGRPCError(nil))

	existing := status.Error(codes.Aborted, "aborted")
	s.Equal(existing, errors.ToGRPCError(existing))

	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
	s.Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
