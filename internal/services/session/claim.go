package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmateos/amigo/internal/draw"
	"github.com/dmateos/amigo/internal/models"
	sessionRepo "github.com/dmateos/amigo/internal/repositories/session"
)

// ClaimPerson flips a participant's claimed flag, exactly once. The whole
// mutation runs inside the repository's atomic update so that concurrent
// claims for different people in the same session cannot overwrite each
// other.
//
// Sessions persisted before eager draws exist with no assignments; for those
// the last claim triggers the draw. An infeasible draw leaves the session
// incomplete without failing the claim.
func (s *service) ClaimPerson(ctx context.Context, input *ClaimPersonInput) (*ClaimPersonOutput, error) {
	if input == nil || input.SessionID == "" || input.PersonID == "" {
		return nil, fmt.Errorf("%w: session ID and person ID are required", ErrInvalidInput)
	}

	updated, err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{
		SessionID: input.SessionID,
		Update: func(session *models.Session) error {
			person := session.FindPerson(input.PersonID)
			if person == nil {
				return ErrPersonNotFound
			}

			if person.Claimed {
				return ErrAlreadyClaimed
			}

			person.Claimed = true

			if !session.IsDrawComplete && session.AllClaimed() {
				assignments, err := s.engine.Generate(session.People)
				if err == nil {
					session.Assignments = assignments
					session.IsDrawComplete = true
				} else if !errors.Is(err, draw.ErrInfeasible) {
					return err
				}
			}

			return nil
		},
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		// ErrPersonNotFound and ErrAlreadyClaimed pass through unchanged.
		return nil, err
	}

	return &ClaimPersonOutput{
		IsDrawComplete: updated.IsDrawComplete,
	}, nil
}

// GetReceiver reveals the receiver assigned to a participant. The caller
// must have claimed their own name first; that is what stops drive-by
// lookups of other people's results.
func (s *service) GetReceiver(ctx context.Context, input *GetReceiverInput) (*GetReceiverOutput, error) {
	if input == nil || input.SessionID == "" || input.PersonID == "" {
		return nil, fmt.Errorf("%w: session ID and person ID are required", ErrInvalidInput)
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	person := session.FindPerson(input.PersonID)
	if person == nil {
		return nil, ErrPersonNotFound
	}

	if !person.Claimed {
		return nil, ErrNotClaimed
	}

	if !session.IsDrawComplete {
		return nil, ErrDrawPending
	}

	receiverID := session.ReceiverIDFor(input.PersonID)
	if receiverID == "" {
		return nil, ErrNoAssignment
	}

	receiver := session.FindPerson(receiverID)
	if receiver == nil {
		return nil, ErrNoAssignment
	}

	return &GetReceiverOutput{
		Receiver: &Receiver{
			ID:      receiver.ID,
			Name:    receiver.Name,
			HouseID: receiver.HouseID,
		},
	}, nil
}
