package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return &Session{
		ID: "session-1",
		Houses: []*House{
			{ID: "house-a", Name: "House A"},
			{ID: "house-b", Name: "House B"},
		},
		People: []*Person{
			{ID: "person-1", Name: "Alice", HouseID: "house-a"},
			{ID: "person-2", Name: "Bob", HouseID: "house-b", Claimed: true},
		},
		Assignments: []*Assignment{
			{GiverID: "person-1", ReceiverID: "person-2"},
			{GiverID: "person-2", ReceiverID: "person-1"},
		},
		IsDrawComplete: true,
	}
}

func TestFindPerson(t *testing.T) {
	session := testSession()

	require.Equal(t, "Alice", session.FindPerson("person-1").Name)
	require.Nil(t, session.FindPerson("person-zzz"))
}

func TestAllClaimed(t *testing.T) {
	session := testSession()
	require.False(t, session.AllClaimed())

	session.People[0].Claimed = true
	require.True(t, session.AllClaimed())
}

func TestReceiverIDFor(t *testing.T) {
	session := testSession()

	require.Equal(t, "person-2", session.ReceiverIDFor("person-1"))
	require.Empty(t, session.ReceiverIDFor("person-zzz"))
}

func TestCloneIsDeep(t *testing.T) {
	session := testSession()
	cloned := session.Clone()

	cloned.People[0].Claimed = true
	cloned.Houses[0].Name = "changed"
	cloned.Assignments[0].ReceiverID = "person-zzz"

	require.False(t, session.People[0].Claimed)
	require.Equal(t, "House A", session.Houses[0].Name)
	require.Equal(t, "person-2", session.Assignments[0].ReceiverID)
}
