package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/cogniflow/cogniflow/internal/errors"
	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/repository/sqlite"
	"github.com/cogniflow/cogniflow/internal/services"
	"github.com/cogniflow/cogniflow/internal/testutil"
)

type UserServiceSuite struct {
	suite.Suite
	db      *sql.DB
	service services.UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	userRepo := sqlite.NewUserRepository(s.db)
	progressRepo := sqlite.NewProgressRepository(s.db)
	s.service = services.NewUserServiceWithClock(userRepo, progressRepo, func() time.Time { return serviceDay })
}

func (s *UserServiceSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserServiceSuite) assertAppErrorCode(err error, code string) {
	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok, "expected *errors.AppError, got %T", err)
	s.Equal(code, appErr.Code)
}

func (s *UserServiceSuite) TestRegisterAndAuthenticate() {
	ctx := context.Background()

	user, err := s.service.Register(ctx, services.RegisterInput{
		Name:     "Asha",
		Email:    "Asha@School.Test",
		Password: "secret",
		Standard: "5th",
		Grade:    "A",
	})
	s.Require().NoError(err)
	s.NotEmpty(user.ID)
	s.Equal("asha@school.test", user.Email, "email is normalized to lowercase")

	got, err := s.service.Authenticate(ctx, "asha@school.test", "secret")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
}

func (s *UserServiceSuite) TestRegisterValidation() {
	ctx := context.Background()

	_, err := s.service.Register(ctx, services.RegisterInput{Email: "a@b.test", Password: "x"})
	s.assertAppErrorCode(err, errors.ErrCodeValidation)

	_, err = s.service.Register(ctx, services.RegisterInput{Name: "Asha", Email: "not-an-email", Password: "x"})
	s.assertAppErrorCode(err, errors.ErrCodeValidation)

	_, err = s.service.Register(ctx, services.RegisterInput{Name: "Asha", Email: "a@b.test"})
	s.assertAppErrorCode(err, errors.ErrCodeValidation)
}

func (s *UserServiceSuite) TestRegisterDuplicateEmail() {
	ctx := context.Background()

	_, err := s.service.Register(ctx, services.RegisterInput{Name: "Asha", Email: "a@b.test", Password: "x"})
	s.Require().NoError(err)

	_, err = s.service.Register(ctx, services.RegisterInput{Name: "Ben", Email: "a@b.test", Password: "y"})
	s.assertAppErrorCode(err, errors.ErrCodeConflict)
}

func (s *UserServiceSuite) TestAuthenticateFailures() {
	ctx := context.Background()

	_, err := s.service.Register(ctx, services.RegisterInput{Name: "Asha", Email: "a@b.test", Password: "secret"})
	s.Require().NoError(err)

	_, err = s.service.Authenticate(ctx, "a@b.test", "wrong")
	s.assertAppErrorCode(err, errors.ErrCodeUnauthorized)

	_, err = s.service.Authenticate(ctx, "nobody@b.test", "secret")
	s.assertAppErrorCode(err, errors.ErrCodeUnauthorized)
}

func (s *UserServiceSuite) TestGetUserNotFound() {
	_, err := s.service.GetUser(context.Background(), "ghost")
	s.assertAppErrorCode(err, errors.ErrCodeNotFound)
}

func (s *UserServiceSuite) TestListUsersByStandard() {
	ctx := context.Background()

	for _, in := range []services.RegisterInput{
		{Name: "Asha", Email: "a@b.test", Password: "x", Standard: "5th"},
		{Name: "Ben", Email: "b@b.test", Password: "x", Standard: "6th"},
		{Name: "Chitra", Email: "c@b.test", Password: "x", Standard: "5th"},
	} {
		_, err := s.service.Register(ctx, in)
		s.Require().NoError(err)
	}

	fifth, err := s.service.ListUsers(ctx, models.UserFilter{Standard: "5th"})
	s.Require().NoError(err)
	s.Len(fifth, 2)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}
