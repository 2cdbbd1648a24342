package config

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dmateos/amigo/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetConfig() {
	cfg := &models.Config{
		ID:   "test-config-id",
		Name: "Family 2025",
		Houses: []*models.House{
			{ID: "house-a", Name: "House A"},
		},
		People: []*models.ConfigPerson{
			{ID: "person-1", Name: "Alice", HouseID: "house-a"},
			{ID: "person-2", Name: "Bob", HouseID: "house-a"},
		},
		CreatedAt: time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC),
	}

	err := s.repo.SaveConfig(context.Background(), &SaveConfigInput{
		Config: cfg,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		ConfigID: "test-config-id",
	})
	s.Require().NoError(err)
	s.Equal("test-config-id", retrieved.ID)
	s.Equal("Family 2025", retrieved.Name)
	s.Len(retrieved.Houses, 1)
	s.Len(retrieved.People, 2)
}

func (s *RedisRepositoryTestSuite) TestGetConfigNotFound() {
	_, err := s.repo.GetConfig(context.Background(), &GetConfigInput{
		ConfigID: "missing-config-id",
	})
	s.Require().ErrorIs(err, ErrConfigNotFound)
}

func (s *RedisRepositoryTestSuite) TestIsConfigured() {
	s.True(s.repo.IsConfigured())
}
