package cockroach

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigmarket/gigchat/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-errs"
)

const sqlProfileCols = `
	  profiles.id
	, profiles.full_name
	, profiles.username
	, profiles.email
	, profiles.avatar_url
`

func (c *Cockroach) Profile(ctx context.Context, userID string) (types.Profile, error) {
	query := `SELECT ` + sqlProfileCols + ` FROM profiles WHERE id = @user_id`
	args := pgx.StrictNamedArgs{
		"user_id": userID,
	}
	profile, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Profile])
	if errors.Is(err, pgx.ErrNoRows) {
		return profile, errs.NotFoundError("profile not found")
	}

	if err != nil {
		return profile, fmt.Errorf("sql select profile: %w", err)
	}

	return profile, nil
}
