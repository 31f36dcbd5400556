package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/tailtales/internal/database"
	"github.com/mtlprog/tailtales/internal/domain"
	"github.com/mtlprog/tailtales/internal/repository"
)

// ViewRepositoryTestSuite runs against the database in DATABASE_URL.
type ViewRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.ViewRepository
}

func (s *ViewRepositoryTestSuite) SetupSuite() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		s.T().Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL)
	s.Require().NoError(err, "failed to connect to database")
	s.pool = db.Pool()

	err = database.RunMigrations(ctx, s.pool)
	s.Require().NoError(err, "failed to run migrations")

	s.repo = repository.NewViewRepository(s.pool)
}

func (s *ViewRepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE views")
	s.Require().NoError(err, "failed to truncate views")
}

func (s *ViewRepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func TestViewRepositorySuite(t *testing.T) {
	suite.Run(t, new(ViewRepositoryTestSuite))
}

func (s *ViewRepositoryTestSuite) createView(updatedAt time.Time) string {
	id := uuid.NewString()
	v := domain.NewView(id, updatedAt)
	s.Require().NoError(s.repo.Create(context.Background(), v))
	return id
}

func (s *ViewRepositoryTestSuite) TestCreateAndGet() {
	id := s.createView(time.Now())

	v, err := s.repo.Get(context.Background(), id)
	s.Require().NoError(err)
	s.Equal(id, v.ID)
	s.False(v.Header.MenuOpen)
	s.Empty(v.Hero.Email)
	s.False(v.Hero.Submitted)
}

func (s *ViewRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(context.Background(), uuid.NewString())
	s.ErrorIs(err, domain.ErrViewNotFound)
}

func (s *ViewRepositoryTestSuite) TestUpdate_PersistsBothStates() {
	ctx := context.Background()
	id := s.createView(time.Now())

	_, err := s.repo.Update(ctx, id, time.Now(), func(v *domain.View) error {
		v.Header.Toggle()
		v.Hero.SetEmail("user@example.com")
		return nil
	})
	s.Require().NoError(err)

	v, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.True(v.Header.MenuOpen)
	s.Equal("user@example.com", v.Hero.Email)

	_, err = s.repo.Update(ctx, id, time.Now(), func(v *domain.View) error {
		v.Hero.Submit()
		return nil
	})
	s.Require().NoError(err)

	v, err = s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.True(v.Hero.Submitted)
	s.Empty(v.Hero.Email)
}

func (s *ViewRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(context.Background(), uuid.NewString(), time.Now(), func(v *domain.View) error {
		return nil
	})
	s.ErrorIs(err, domain.ErrViewNotFound)
}

func (s *ViewRepositoryTestSuite) TestDeleteIdleBefore() {
	ctx := context.Background()
	now := time.Now()
	oldID := s.createView(now.Add(-2 * time.Hour))
	freshID := s.createView(now)

	deleted, err := s.repo.DeleteIdleBefore(ctx, now.Add(-time.Hour))
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.repo.Get(ctx, oldID)
	s.ErrorIs(err, domain.ErrViewNotFound)

	_, err = s.repo.Get(ctx, freshID)
	s.NoError(err)
}
