package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dmateos/amigo/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
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

	s.testNow = time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSession() *models.Session {
	return &models.Session{
		ID: "test-session-id",
		Houses: []*models.House{
			{ID: "house-a", Name: "House A"},
			{ID: "house-b", Name: "House B"},
		},
		People: []*models.Person{
			{ID: "person-1", Name: "Alice", HouseID: "house-a"},
			{ID: "person-2", Name: "Bob", HouseID: "house-b"},
		},
		Assignments: []*models.Assignment{
			{GiverID: "person-1", ReceiverID: "person-2"},
			{GiverID: "person-2", ReceiverID: "person-1"},
		},
		IsDrawComplete: true,
		CreatedAt:      s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := s.testSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Len(retrieved.Houses, 2)
	s.Len(retrieved.People, 2)
	s.Len(retrieved.Assignments, 2)
	s.True(retrieved.IsDrawComplete)
	s.Equal("Alice", retrieved.People[0].Name)
	s.False(retrieved.People[0].Claimed)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateSession() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession(),
	})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		SessionID: "test-session-id",
		Update: func(session *models.Session) error {
			session.FindPerson("person-1").Claimed = true
			return nil
		},
	})
	s.Require().NoError(err)
	s.True(updated.FindPerson("person-1").Claimed)
	s.False(updated.FindPerson("person-2").Claimed)

	// The write must be visible to a fresh read
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.True(retrieved.FindPerson("person-1").Claimed)
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionNotFound() {
	_, err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		SessionID: "missing-session-id",
		Update: func(session *models.Session) error {
			return nil
		},
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionAborted() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession(),
	})
	s.Require().NoError(err)

	abort := errors.New("business rule says no")

	_, err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		SessionID: "test-session-id",
		Update: func(session *models.Session) error {
			session.FindPerson("person-1").Claimed = true
			return abort
		},
	})
	s.Require().ErrorIs(err, abort)

	// The aborted mutation must not have been written
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.False(retrieved.FindPerson("person-1").Claimed)
}

func (s *RedisRepositoryTestSuite) TestSequentialUpdatesAllLand() {
	session := s.testSession()
	for _, p := range session.People {
		p.Claimed = false
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	for _, personID := range []string{"person-1", "person-2"} {
		id := personID
		_, err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
			SessionID: "test-session-id",
			Update: func(sess *models.Session) error {
				sess.FindPerson(id).Claimed = true
				return nil
			},
		})
		s.Require().NoError(err)
	}

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.True(retrieved.AllClaimed())
}

// claimOutOfBand acts as a competing writer: it reads the stored session on
// its own connection, flips one claim flag and writes the record straight
// back, invalidating any WATCH held on the key.
func (s *RedisRepositoryTestSuite) claimOutOfBand(personID string) {
	ctx := context.Background()
	key := sessionKeyPrefix + "test-session-id"

	raw, err := s.client.Get(ctx, key).Result()
	s.Require().NoError(err)

	var session models.Session
	s.Require().NoError(json.Unmarshal([]byte(raw), &session))
	session.FindPerson(personID).Claimed = true

	data, err := json.Marshal(&session)
	s.Require().NoError(err)
	s.Require().NoError(s.client.Set(ctx, key, data, 0).Err())
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionRetriesOnConflict() {
	session := s.testSession()
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	invocations := 0
	updated, err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		SessionID: "test-session-id",
		Update: func(sess *models.Session) error {
			invocations++
			if invocations == 1 {
				// A competing writer lands between our read and our
				// write, so this first pass must be thrown away.
				s.claimOutOfBand("person-2")
				s.False(sess.FindPerson("person-2").Claimed)
			} else {
				// The retry reads fresh state that includes the
				// competing claim.
				s.True(sess.FindPerson("person-2").Claimed)
			}
			sess.FindPerson("person-1").Claimed = true
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(2, invocations)
	s.True(updated.AllClaimed())

	// Neither writer's claim was lost
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.True(retrieved.AllClaimed())
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionTooManyConflicts() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: s.testSession(),
	})
	s.Require().NoError(err)

	invocations := 0
	_, err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{
		SessionID: "test-session-id",
		Update: func(sess *models.Session) error {
			invocations++
			// Lose the race on every attempt
			s.claimOutOfBand("person-2")
			sess.FindPerson("person-1").Claimed = true
			return nil
		},
	})
	s.Require().ErrorIs(err, ErrTooManyConflicts)
	s.Equal(maxUpdateAttempts, invocations)

	// The losing writer's mutation never landed; the competing one did
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.False(retrieved.FindPerson("person-1").Claimed)
	s.True(retrieved.FindPerson("person-2").Claimed)
}

func (s *RedisRepositoryTestSuite) TestIsConfigured() {
	s.True(s.repo.IsConfigured())
}
