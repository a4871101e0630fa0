package types

import (
	"strings"
	"unicode/utf8"

	"github.com/nicolasparada/go-errs"
)

const messageContentMaxLength = 2048

// MessageSent is emitted by the message-send flow once a message
// has been delivered to an event's group conversation.
type MessageSent struct {
	EventID    string `json:"-"`
	Content    string `json:"content"`
	SenderName string `json:"senderName"`

	loggedInUserID string
}

func (in *MessageSent) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in MessageSent) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *MessageSent) Validate() error {
	in.EventID = strings.TrimSpace(in.EventID)
	in.Content = strings.TrimSpace(in.Content)
	in.SenderName = strings.TrimSpace(in.SenderName)

	if in.EventID == "" {
		return errs.InvalidArgumentError("event ID is required")
	}

	if in.Content == "" {
		return errs.InvalidArgumentError("content is required")
	}

	if utf8.RuneCountInString(in.Content) > messageContentMaxLength {
		return errs.InvalidArgumentError("content too long")
	}

	return nil
}

type NotifyMentions struct {
	EventID     string
	MessageText string
	SenderID    string
	SenderName  string
}
