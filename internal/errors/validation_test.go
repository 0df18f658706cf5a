package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/essence-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsOrdered() {
	ve := errors.NewValidationError()
	ve.AddFieldError("runs", "must be positive")
	ve.AddFieldError("item_name", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: item_name: is required; runs: must be positive", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("player_id", "is malformed").
		Fieldf("top_n", "must be between %d and %d", 1, 30).
		RequiredField("item_name")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "top_n: must be between 1 and 30")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidators() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "x", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "  ", vb) }, true},
		{"range inside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("f", 3, 1, 3, vb) }, false},
		{"range outside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("f", 0, 1, 3, vb) }, true},
		{"enum member", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("f", "redis", []string{"redis", "mysql"}, vb) }, false},
		{"enum other", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("f", "mongo", []string{"redis", "mysql"}, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
