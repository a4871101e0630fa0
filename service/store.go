package service

import (
	"context"
	"time"

	"github.com/gigmarket/gigchat/types"
)

//go:generate go tool moq -out store_mock_test.go . EventStore ParticipantDirectory ProfileDirectory NotificationStore Broker

// EventStore returns a go-errs NotFound error for unknown events.
type EventStore interface {
	EventTitle(ctx context.Context, eventID string) (string, error)
}

type ParticipantDirectory interface {
	// ParticipantsWithProfiles is the privileged aggregate lookup.
	// It may be unavailable.
	ParticipantsWithProfiles(ctx context.Context, eventID string) ([]types.ParticipantProfile, error)
	Participants(ctx context.Context, eventID string) ([]types.Participant, error)
	IsParticipant(ctx context.Context, eventID, userID string) (bool, error)
	// UpsertParticipant inserts or updates keyed by (EventID, UserID).
	UpsertParticipant(ctx context.Context, in types.UpsertParticipant) error
	// MarkParticipantRead only updates an existing participant.
	// It returns a go-errs NotFound error otherwise.
	MarkParticipantRead(ctx context.Context, eventID, userID string, readAt time.Time) error
}

// ProfileDirectory returns a go-errs NotFound error for unknown users.
type ProfileDirectory interface {
	Profile(ctx context.Context, userID string) (types.Profile, error)
}

type NotificationSink interface {
	CreateNotifications(ctx context.Context, in []types.CreateNotification) ([]types.Notification, error)
}

type NotificationStore interface {
	NotificationSink
	Notifications(ctx context.Context, in types.ListNotifications) (types.Page[types.Notification], error)
	ReadNotification(ctx context.Context, in types.ReadNotification) error
}

// Broker signals created notifications to observers.
type Broker interface {
	PublishNotification(ctx context.Context, notification types.Notification) error
	// SubscribeNotifications calls fn for every notification published to
	// userID until the returned unsubscribe function is called.
	SubscribeNotifications(userID string, fn func(types.Notification)) (func() error, error)
}
