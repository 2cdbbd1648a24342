package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmateos/amigo/internal/draw"
	"github.com/dmateos/amigo/internal/models"
	configRepo "github.com/dmateos/amigo/internal/repositories/config"
	sessionRepo "github.com/dmateos/amigo/internal/repositories/session"
)

// TestConcurrentClaimsAllLand exercises the whole claim path against a real
// store: N concurrent claims for N distinct people must all succeed and all
// be visible in the persisted session.
func TestConcurrentClaimsAllLand(t *testing.T) {
	const peopleCount = 24

	store := sessionRepo.NewMemory()

	svc, err := New(&Config{
		SessionRepo: store,
		ConfigRepo:  configRepo.NewMemory(),
		Engine:      draw.New(&draw.Config{Seed: 7}),
	})
	require.NoError(t, err)

	houses := []*models.House{
		{ID: "house-a", Name: "House A"},
		{ID: "house-b", Name: "House B"},
	}

	var people []*models.Person
	for i := 0; i < peopleCount; i++ {
		houseID := "house-a"
		if i%2 == 0 {
			houseID = "house-b"
		}
		people = append(people, &models.Person{
			ID:      fmt.Sprintf("person-%d", i),
			Name:    fmt.Sprintf("Person %d", i),
			HouseID: houseID,
		})
	}

	ctx := context.Background()

	created, err := svc.CreateSession(ctx, &CreateSessionInput{
		Houses: houses,
		People: people,
	})
	require.NoError(t, err)
	require.True(t, created.IsDrawComplete)

	var wg sync.WaitGroup
	errs := make(chan error, peopleCount)

	for i := 0; i < peopleCount; i++ {
		personID := fmt.Sprintf("person-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ClaimPerson(ctx, &ClaimPersonInput{
				SessionID: created.SessionID,
				PersonID:  personID,
			})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	persisted, err := store.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: created.SessionID,
	})
	require.NoError(t, err)
	require.True(t, persisted.AllClaimed())
}

// TestRevealAfterAllClaims walks a two-household session end to end: once
// everyone claims, every reveal succeeds and returns a receiver from another
// house.
func TestRevealAfterAllClaims(t *testing.T) {
	svc, err := New(&Config{
		SessionRepo: sessionRepo.NewMemory(),
		ConfigRepo:  configRepo.NewMemory(),
		Engine:      draw.New(&draw.Config{Seed: 11}),
	})
	require.NoError(t, err)

	houses := []*models.House{
		{ID: "house-a", Name: "House A"},
		{ID: "house-b", Name: "House B"},
	}
	people := []*models.Person{
		{ID: "person-1", Name: "Alice", HouseID: "house-a"},
		{ID: "person-2", Name: "Bob", HouseID: "house-a"},
		{ID: "person-3", Name: "Carol", HouseID: "house-b"},
		{ID: "person-4", Name: "Dave", HouseID: "house-b"},
	}
	houseByID := map[string]string{
		"person-1": "house-a",
		"person-2": "house-a",
		"person-3": "house-b",
		"person-4": "house-b",
	}

	ctx := context.Background()

	created, err := svc.CreateSession(ctx, &CreateSessionInput{
		Houses: houses,
		People: people,
	})
	require.NoError(t, err)
	require.True(t, created.IsDrawComplete)

	for _, p := range people {
		_, err := svc.ClaimPerson(ctx, &ClaimPersonInput{
			SessionID: created.SessionID,
			PersonID:  p.ID,
		})
		require.NoError(t, err)
	}

	for _, p := range people {
		out, err := svc.GetReceiver(ctx, &GetReceiverInput{
			SessionID: created.SessionID,
			PersonID:  p.ID,
		})
		require.NoError(t, err)
		require.NotEqual(t, p.ID, out.Receiver.ID)
		require.NotEqual(t, houseByID[p.ID], out.Receiver.HouseID)
	}
}
