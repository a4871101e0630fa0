package service

import (
	"context"
	"fmt"

	"github.com/gigmarket/gigchat/auth"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
)

func (svc *Service) Roster(ctx context.Context, in types.RetrieveRoster) ([]types.Identity, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	loggedInUserID, loggedIn := auth.UserIDFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUserID)

	if err := svc.requireParticipant(ctx, in.EventID, in.LoggedInUserID()); err != nil {
		return nil, err
	}

	return svc.ResolveRoster(ctx, in.EventID), nil
}

// JoinEvent records a user as a participant of the event.
// It backs the booking status transition and is not exposed to end users.
// Joining again keeps the original join time.
func (svc *Service) JoinEvent(ctx context.Context, in types.JoinEvent) error {
	if err := in.Validate(); err != nil {
		return err
	}

	return svc.participants.UpsertParticipant(ctx, types.UpsertParticipant{
		EventID:  in.EventID,
		UserID:   in.UserID,
		JoinedAt: svc.now(),
	})
}

// MarkEventRead never adds the caller as a participant.
// It returns a go-errs NotFound error for non-participants.
func (svc *Service) MarkEventRead(ctx context.Context, in types.MarkEventRead) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUserID, loggedIn := auth.UserIDFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUserID)

	return svc.participants.MarkParticipantRead(ctx, in.EventID, in.LoggedInUserID(), svc.now())
}

// requireParticipant returns a go-errs PermissionDenied error unless
// userID participates in the event.
func (svc *Service) requireParticipant(ctx context.Context, eventID, userID string) error {
	ok, err := svc.participants.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("check participant: %w", err)
	}

	if !ok {
		return errs.PermissionDeniedError("not a participant of the event")
	}

	return nil
}
