package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/repository"
	"github.com/cogniflow/cogniflow/internal/repository/sqlite"
	"github.com/cogniflow/cogniflow/internal/testutil"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) newUser(id, email, standard string) models.User {
	return models.User{
		ID:         id,
		Name:       "Student " + id,
		Email:      email,
		Password:   "secret",
		Standard:   standard,
		Grade:      "A",
		JoinDate:   testDay,
		LastActive: testDay,
	}
}

func (s *UserRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	u := s.newUser("u1", "asha@school.test", "5th")

	s.Require().NoError(s.repo.Insert(ctx, u))

	byID, err := s.repo.GetByID(ctx, "u1")
	s.Require().NoError(err)
	s.Equal(u.Email, byID.Email)
	s.Equal(u.Standard, byID.Standard)

	byEmail, err := s.repo.GetByEmail(ctx, "asha@school.test")
	s.Require().NoError(err)
	s.Equal("u1", byEmail.ID)
}

func (s *UserRepositorySuite) TestGetNotFound() {
	_, err := s.repo.GetByID(context.Background(), "missing")
	s.ErrorIs(err, repository.ErrNotFound)

	_, err = s.repo.GetByEmail(context.Background(), "nobody@school.test")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *UserRepositorySuite) TestDuplicateEmailRejected() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, s.newUser("u1", "same@school.test", "5th")))
	s.Error(s.repo.Insert(ctx, s.newUser("u2", "same@school.test", "5th")))
}

func (s *UserRepositorySuite) TestListFiltersByStandard() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, s.newUser("u1", "a@school.test", "5th")))
	s.Require().NoError(s.repo.Insert(ctx, s.newUser("u2", "b@school.test", "6th")))
	s.Require().NoError(s.repo.Insert(ctx, s.newUser("u3", "c@school.test", "5th")))

	all, err := s.repo.List(ctx, models.UserFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)

	fifth, err := s.repo.List(ctx, models.UserFilter{Standard: "5th"})
	s.Require().NoError(err)
	s.Len(fifth, 2)
	for _, u := range fifth {
		s.Equal("5th", u.Standard)
	}
}

func (s *UserRepositorySuite) TestUpdateLastActive() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, s.newUser("u1", "a@school.test", "5th")))

	later := testDay.Add(48 * time.Hour)
	s.Require().NoError(s.repo.UpdateLastActive(ctx, "u1", later))

	got, err := s.repo.GetByID(ctx, "u1")
	s.Require().NoError(err)
	s.True(got.LastActive.Equal(later))
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
