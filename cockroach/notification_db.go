package cockroach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gigmarket/gigchat/id"
	"github.com/gigmarket/gigchat/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
)

const sqlNotificationCols = `
	  notifications.id
	, notifications.recipient_id
	, notifications.kind
	, notifications.title
	, notifications.body
	, notifications.event_id
	, notifications.sender_id
	, notifications.read_at
	, notifications.created_at
`

// CreateNotifications inserts the whole batch in a single statement.
// Either every notification is created or none is.
func (c *Cockroach) CreateNotifications(ctx context.Context, in []types.CreateNotification) ([]types.Notification, error) {
	if len(in) == 0 {
		return nil, nil
	}

	var values []string
	args := pgx.StrictNamedArgs{}
	for i, n := range in {
		values = append(values, fmt.Sprintf(
			"(@id_%d, @recipient_id_%d, @kind_%d, @title_%d, @body_%d, @event_id_%d, @sender_id_%d)",
			i, i, i, i, i, i, i,
		))
		args[fmt.Sprintf("id_%d", i)] = id.Generate()
		args[fmt.Sprintf("recipient_id_%d", i)] = n.RecipientID
		args[fmt.Sprintf("kind_%d", i)] = n.Kind
		args[fmt.Sprintf("title_%d", i)] = n.Title
		args[fmt.Sprintf("body_%d", i)] = n.Body
		args[fmt.Sprintf("event_id_%d", i)] = n.EventID
		args[fmt.Sprintf("sender_id_%d", i)] = n.SenderID
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (id, recipient_id, kind, title, body, event_id, sender_id)
		VALUES %s
		RETURNING %s
	`, strings.Join(values, ", "), strings.ReplaceAll(sqlNotificationCols, "notifications.", ""))

	var out []types.Notification
	err := c.executeTx(ctx, func(tx pgx.Tx) error {
		var err error
		out, err = pgxutil.Select(ctx, tx, query, []any{args}, pgx.RowToStructByNameLax[types.Notification])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("sql insert notifications: %w", err)
	}

	return out, nil
}

func (c *Cockroach) Notifications(ctx context.Context, in types.ListNotifications) (types.Page[types.Notification], error) {
	var out types.Page[types.Notification]

	pageArgs, err := ParsePageArgs[time.Time](in.PageArgs)
	if err != nil {
		return out, err
	}

	args := pgx.StrictNamedArgs{
		"recipient_id": in.UserID(),
		// +1 to check if there's a next page
		"limit": pageArgs.First + 1,
	}
	filters := []string{"notifications.recipient_id = @recipient_id"}

	if pageArgs.After != nil {
		filters = append(filters, "(notifications.created_at, notifications.id) < (@after_created_at, @after_id)")
		args["after_created_at"] = pageArgs.After.Value
		args["after_id"] = pageArgs.After.ID
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM notifications
		WHERE %s
		ORDER BY notifications.created_at DESC, notifications.id DESC
		LIMIT @limit`,
		sqlNotificationCols,
		strings.Join(filters, " AND "),
	)

	out.Items, err = pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Notification])
	if err != nil {
		return out, fmt.Errorf("sql select notifications: %w", err)
	}

	err = applyPageInfo(&out, pageArgs, func(n types.Notification) Cursor[time.Time] {
		return Cursor[time.Time]{ID: n.ID, Value: n.CreatedAt}
	})
	if err != nil {
		return out, err
	}

	return out, nil
}

// ReadNotification is a no-op for notifications already read or owned by
// somebody else.
func (c *Cockroach) ReadNotification(ctx context.Context, in types.ReadNotification) error {
	const query = `
		UPDATE notifications
		SET read_at = now()
		WHERE id = @notification_id AND recipient_id = @recipient_id AND read_at IS NULL
	`

	_, err := c.db.Exec(ctx, query, pgx.StrictNamedArgs{
		"notification_id": in.NotificationID,
		"recipient_id":    in.UserID(),
	})
	if err != nil {
		return fmt.Errorf("sql update notification read_at: %w", err)
	}

	return nil
}
