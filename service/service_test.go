package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gigmarket/gigchat/auth"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
)

type testDeps struct {
	events        *EventStoreMock
	participants  *ParticipantDirectoryMock
	profiles      *ProfileDirectoryMock
	notifications *NotificationStoreMock
	broker        *BrokerMock
}

func newTestDeps() testDeps {
	return testDeps{
		events:        &EventStoreMock{},
		participants:  &ParticipantDirectoryMock{},
		profiles:      &ProfileDirectoryMock{},
		notifications: &NotificationStoreMock{},
		broker:        &BrokerMock{},
	}
}

func newTestService(deps testDeps, aggregateRoster bool) *Service {
	return New(&Config{
		Events:            deps.events,
		Participants:      deps.participants,
		Profiles:          deps.profiles,
		Notifications:     deps.notifications,
		Broker:            deps.broker,
		BackgroundTimeout: 5 * time.Second,
		AggregateRoster:   aggregateRoster,
	})
}

// profilesFrom serves profiles from a fixed map. Missing users are not found
// and users listed in failing return a transient error.
func profilesFrom(profiles map[string]types.Profile, failing ...string) func(context.Context, string) (types.Profile, error) {
	return func(ctx context.Context, userID string) (types.Profile, error) {
		for _, f := range failing {
			if f == userID {
				return types.Profile{}, fmt.Errorf("profile directory unavailable")
			}
		}

		p, ok := profiles[userID]
		if !ok {
			return types.Profile{}, errs.NotFoundError("profile not found")
		}

		p.UserID = userID
		return p, nil
	}
}

func participantsOf(eventID string, userIDs ...string) []types.Participant {
	out := make([]types.Participant, len(userIDs))
	for i, userID := range userIDs {
		out[i] = types.Participant{EventID: eventID, UserID: userID}
	}
	return out
}

func membersOf(userIDs ...string) func(context.Context, string, string) (bool, error) {
	return func(ctx context.Context, eventID, userID string) (bool, error) {
		return slices.Contains(userIDs, userID), nil
	}
}

func createdFrom(_ context.Context, in []types.CreateNotification) ([]types.Notification, error) {
	out := make([]types.Notification, len(in))
	for i, n := range in {
		out[i] = types.Notification{
			ID:          fmt.Sprintf("n%d", i+1),
			RecipientID: n.RecipientID,
			Kind:        n.Kind,
			Title:       n.Title,
			Body:        n.Body,
			EventID:     n.EventID,
			SenderID:    n.SenderID,
		}
	}
	return out, nil
}

func loggedIn(ctx context.Context, userID string) context.Context {
	return auth.ContextWithUserID(ctx, userID)
}
