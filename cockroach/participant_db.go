package cockroach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gigmarket/gigchat/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-errs"
)

// ParticipantsWithProfiles joins participants with the profile fields
// shown in a roster, in join order.
func (c *Cockroach) ParticipantsWithProfiles(ctx context.Context, eventID string) ([]types.ParticipantProfile, error) {
	const query = `
		SELECT
			  participants.user_id
			, profiles.full_name
			, profiles.email
			, profiles.avatar_url
		FROM participants
		LEFT JOIN profiles ON participants.user_id = profiles.id
		WHERE participants.event_id = @event_id
		ORDER BY participants.joined_at ASC, participants.user_id ASC
	`
	args := pgx.StrictNamedArgs{
		"event_id": eventID,
	}
	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.ParticipantProfile])
	if err != nil {
		return nil, fmt.Errorf("sql select participants with profiles: %w", err)
	}

	return out, nil
}

func (c *Cockroach) Participants(ctx context.Context, eventID string) ([]types.Participant, error) {
	const query = `
		SELECT event_id, user_id, joined_at, last_read_at
		FROM participants
		WHERE event_id = @event_id
		ORDER BY joined_at ASC, user_id ASC
	`
	args := pgx.StrictNamedArgs{
		"event_id": eventID,
	}
	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Participant])
	if err != nil {
		return nil, fmt.Errorf("sql select participants: %w", err)
	}

	return out, nil
}

// UpsertParticipant keeps the original joined_at of an existing participant.
// A nil LastReadAt leaves the stored one untouched.
func (c *Cockroach) UpsertParticipant(ctx context.Context, in types.UpsertParticipant) error {
	const query = `
		INSERT INTO participants (event_id, user_id, joined_at, last_read_at)
		VALUES (@event_id, @user_id, @joined_at, @last_read_at)
		ON CONFLICT (event_id, user_id) DO UPDATE
		SET last_read_at = COALESCE(excluded.last_read_at, participants.last_read_at)
	`

	_, err := c.db.Exec(ctx, query, pgx.StrictNamedArgs{
		"event_id":     in.EventID,
		"user_id":      in.UserID,
		"joined_at":    in.JoinedAt,
		"last_read_at": in.LastReadAt,
	})
	if err != nil {
		return fmt.Errorf("sql upsert participant: %w", err)
	}

	return nil
}

func (c *Cockroach) IsParticipant(ctx context.Context, eventID, userID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM participants
			WHERE event_id = @event_id AND user_id = @user_id
		)
	`
	args := pgx.StrictNamedArgs{
		"event_id": eventID,
		"user_id":  userID,
	}
	exists, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[bool])
	if err != nil {
		return false, fmt.Errorf("sql select participant existence: %w", err)
	}

	return exists, nil
}

func (c *Cockroach) MarkParticipantRead(ctx context.Context, eventID, userID string, readAt time.Time) error {
	const query = `
		UPDATE participants
		SET last_read_at = @read_at
		WHERE event_id = @event_id AND user_id = @user_id
		RETURNING user_id
	`
	args := pgx.StrictNamedArgs{
		"event_id": eventID,
		"user_id":  userID,
		"read_at":  readAt,
	}
	_, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[string])
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFoundError("participant not found")
	}

	if err != nil {
		return fmt.Errorf("sql update participant read: %w", err)
	}

	return nil
}
