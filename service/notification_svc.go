package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gigmarket/gigchat/auth"
	"github.com/gigmarket/gigchat/id"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
)

func (svc *Service) Notifications(ctx context.Context, in types.ListNotifications) (types.Page[types.Notification], error) {
	var out types.Page[types.Notification]

	if err := in.Validate(); err != nil {
		return out, err
	}

	loggedInUserID, loggedIn := auth.UserIDFromContext(ctx)
	if !loggedIn {
		return out, errs.Unauthenticated
	}

	in.SetUserID(loggedInUserID)

	return svc.notifications.Notifications(ctx, in)
}

func (svc *Service) ReadNotification(ctx context.Context, in types.ReadNotification) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if !id.Valid(in.NotificationID) {
		return errs.InvalidArgumentError("invalid notification ID")
	}

	loggedInUserID, loggedIn := auth.UserIDFromContext(ctx)
	if !loggedIn {
		return errs.Unauthenticated
	}

	in.SetUserID(loggedInUserID)

	return svc.notifications.ReadNotification(ctx, in)
}

// notificationStreamBuffer is how many notifications a stream holds for a
// slow reader before dropping new ones.
const notificationStreamBuffer = 16

// NotificationStream delivers the logged-in user's notifications as they
// are created. The channel is closed once ctx is done.
// Publishing never waits on the reader: when the buffer is full the
// notification is dropped from the stream. It is still stored and can be
// listed with Notifications.
func (svc *Service) NotificationStream(ctx context.Context) (<-chan types.Notification, error) {
	loggedInUserID, loggedIn := auth.UserIDFromContext(ctx)
	if !loggedIn {
		return nil, errs.Unauthenticated
	}

	var (
		mu     sync.Mutex
		closed bool
	)
	nn := make(chan types.Notification, notificationStreamBuffer)
	unsub, err := svc.broker.SubscribeNotifications(loggedInUserID, func(n types.Notification) {
		mu.Lock()
		defer mu.Unlock()

		// brokers may still deliver after unsubscribing
		if closed {
			return
		}

		select {
		case nn <- n:
		default:
			svc.logger.Warn("notification stream full, dropping notification", "user_id", loggedInUserID, "notification_id", n.ID)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to notifications: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := unsub(); err != nil {
			svc.logger.Error("could not unsubscribe from notifications", "user_id", loggedInUserID, "error", err)
		}

		mu.Lock()
		closed = true
		close(nn)
		mu.Unlock()
	}()

	return nn, nil
}
