package cockroach

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-errs"
)

func (c *Cockroach) EventTitle(ctx context.Context, eventID string) (string, error) {
	const query = `SELECT title FROM events WHERE id = @event_id`
	args := pgx.StrictNamedArgs{
		"event_id": eventID,
	}
	title, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[string])
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errs.NotFoundError("event not found")
	}

	if err != nil {
		return "", fmt.Errorf("sql select event title: %w", err)
	}

	return title, nil
}
