package types

import (
	"strings"
	"time"

	"github.com/nicolasparada/go-errs"
)

// Participant is a user's membership in an event's group conversation.
// There is at most one per (EventID, UserID).
type Participant struct {
	EventID    string     `db:"event_id"`
	UserID     string     `db:"user_id"`
	JoinedAt   time.Time  `db:"joined_at"`
	LastReadAt *time.Time `db:"last_read_at"`
}

// ParticipantProfile is a participant row already joined with the profile
// fields needed to display it.
type ParticipantProfile struct {
	UserID    string  `db:"user_id"`
	FullName  *string `db:"full_name"`
	Email     *string `db:"email"`
	AvatarURL *string `db:"avatar_url"`
}

type UpsertParticipant struct {
	EventID    string
	UserID     string
	JoinedAt   time.Time
	LastReadAt *time.Time
}

type RetrieveRoster struct {
	EventID string

	loggedInUserID string
}

func (in *RetrieveRoster) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in RetrieveRoster) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *RetrieveRoster) Validate() error {
	in.EventID = strings.TrimSpace(in.EventID)
	if in.EventID == "" {
		return errs.InvalidArgumentError("event ID is required")
	}
	return nil
}

// JoinEvent is issued by the booking flow once a user's participation in an
// event is confirmed.
type JoinEvent struct {
	EventID string
	UserID  string
}

func (in *JoinEvent) Validate() error {
	in.EventID = strings.TrimSpace(in.EventID)
	if in.EventID == "" {
		return errs.InvalidArgumentError("event ID is required")
	}

	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return errs.InvalidArgumentError("user ID is required")
	}

	return nil
}

type MarkEventRead struct {
	EventID string

	loggedInUserID string
}

func (in *MarkEventRead) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in MarkEventRead) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *MarkEventRead) Validate() error {
	in.EventID = strings.TrimSpace(in.EventID)
	if in.EventID == "" {
		return errs.InvalidArgumentError("event ID is required")
	}
	return nil
}
