package types

import (
	"strings"
	"time"

	"github.com/nicolasparada/go-errs"
)

type Notification struct {
	ID          string           `json:"id" db:"id" msgpack:"id"`
	RecipientID string           `json:"recipientID" db:"recipient_id" msgpack:"recipient_id"`
	Kind        NotificationKind `json:"kind" db:"kind" msgpack:"kind"`
	Title       string           `json:"title" db:"title" msgpack:"title"`
	Body        string           `json:"body" db:"body" msgpack:"body"`
	EventID     string           `json:"eventID" db:"event_id" msgpack:"event_id"`
	SenderID    string           `json:"senderID" db:"sender_id" msgpack:"sender_id"`
	ReadAt      *time.Time       `json:"readAt" db:"read_at" msgpack:"read_at"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at" msgpack:"created_at"`
}

func (n Notification) Read() bool {
	return n.ReadAt != nil
}

type NotificationKind string

func (k NotificationKind) String() string {
	return string(k)
}

const (
	NotificationKindNewMessage NotificationKind = "new_message"
)

type CreateNotification struct {
	RecipientID string
	Kind        NotificationKind
	Title       string
	Body        string
	EventID     string
	SenderID    string
}

type ListNotifications struct {
	PageArgs PageArgs

	userID string
}

func (in *ListNotifications) SetUserID(userID string) {
	in.userID = userID
}

func (in ListNotifications) UserID() string {
	return in.userID
}

func (in *ListNotifications) Validate() error {
	return in.PageArgs.Validate()
}

type ReadNotification struct {
	NotificationID string

	userID string
}

func (in *ReadNotification) SetUserID(userID string) {
	in.userID = userID
}

func (in ReadNotification) UserID() string {
	return in.userID
}

func (in *ReadNotification) Validate() error {
	in.NotificationID = strings.TrimSpace(in.NotificationID)
	if in.NotificationID == "" {
		return errs.InvalidArgumentError("notification ID is required")
	}
	return nil
}
