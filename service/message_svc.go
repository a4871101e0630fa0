package service

import (
	"context"

	"github.com/gigmarket/gigchat/auth"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
)

// MessageSent is called by the message-send flow after delivery.
// Only participants of the event may trigger it.
// Mention notifications run in the background; their failures
// never reach the caller.
func (svc *Service) MessageSent(ctx context.Context, in types.MessageSent) error {
	if err := in.Validate(); err != nil {
		return err
	}

	loggedInUserID, loggedIn := auth.UserIDFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	in.SetLoggedInUserID(loggedInUserID)

	if err := svc.requireParticipant(ctx, in.EventID, in.LoggedInUserID()); err != nil {
		return err
	}

	svc.background(func(ctx context.Context) error {
		senderName := in.SenderName
		if senderName == "" {
			senderName = svc.ResolveIdentity(ctx, in.LoggedInUserID()).DisplayName
		}

		svc.NotifyMentions(ctx, types.NotifyMentions{
			EventID:     in.EventID,
			MessageText: in.Content,
			SenderID:    in.LoggedInUserID(),
			SenderName:  senderName,
		})

		return ctx.Err()
	})

	return nil
}
