// Package pubsub carries the "notification created" signal to observers.
package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gigmarket/gigchat/types"
	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"
)

func notificationSubject(userID string) string { return "notifications." + userID }

// NATS publishes notifications as msgpack payloads
// on the subject "notifications.<recipient id>".
type NATS struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNATS(conn *nats.Conn, logger *slog.Logger) *NATS {
	return &NATS{conn: conn, logger: logger}
}

func (n *NATS) PublishNotification(ctx context.Context, notification types.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := msgpack.Marshal(notification)
	if err != nil {
		return fmt.Errorf("msgpack marshal notification: %w", err)
	}

	if err := n.conn.Publish(notificationSubject(notification.RecipientID), b); err != nil {
		return fmt.Errorf("nats publish notification: %w", err)
	}

	return nil
}

// SubscribeNotifications calls fn for every notification addressed to userID
// until the returned function is called.
func (n *NATS) SubscribeNotifications(userID string, fn func(types.Notification)) (func() error, error) {
	sub, err := n.conn.Subscribe(notificationSubject(userID), func(msg *nats.Msg) {
		var notification types.Notification
		if err := msgpack.Unmarshal(msg.Data, &notification); err != nil {
			n.logger.Error("msgpack unmarshal notification", "subject", msg.Subject, "error", err)
			return
		}

		fn(notification)
	})
	if err != nil {
		return nil, fmt.Errorf("nats subscribe to notifications: %w", err)
	}

	return sub.Unsubscribe, nil
}
