package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gigmarket/gigchat/metrics"
	"github.com/gigmarket/gigchat/textutil"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
)

const (
	mentionNotificationTitle = "New mention"
	eventTitleFallback       = "Event"
)

func mentionNotificationBody(senderName, eventTitle string) string {
	return fmt.Sprintf("%s mentioned you in %s", senderName, eventTitle)
}

// NotifyMentions notifies every participant of the event whose display
// name contains one of the message's mention tokens, except the sender.
// Matching is a case-insensitive substring test with no word boundary, so
// "@al" notifies both "Alice" and "Ralph".
// Each recipient gets one notification, written as a single batch.
//
// It is best-effort: failures are logged and never reach the caller.
func (svc *Service) NotifyMentions(ctx context.Context, in types.NotifyMentions) {
	tokens := textutil.ParseMentions(in.MessageText)
	if len(tokens) == 0 {
		return
	}

	svc.metrics.MentionsParsed.Add(float64(len(tokens)))

	roster := svc.resolveRoster(ctx, in.EventID)
	if !roster.ok() {
		return
	}

	recipients := matchMentions(roster.value, tokens, in.SenderID)
	if len(recipients) == 0 {
		return
	}

	eventTitle := eventTitleFallback
	if title := svc.lookupEventTitle(ctx, in.EventID); title.ok() {
		eventTitle = title.value
	}

	batch := make([]types.CreateNotification, len(recipients))
	for i, recipient := range recipients {
		batch[i] = types.CreateNotification{
			RecipientID: recipient.ID,
			Kind:        types.NotificationKindNewMessage,
			Title:       mentionNotificationTitle,
			Body:        mentionNotificationBody(in.SenderName, eventTitle),
			EventID:     in.EventID,
			SenderID:    in.SenderID,
		}
	}

	created, err := svc.notifications.CreateNotifications(ctx, batch)
	if err != nil {
		svc.logger.Error("could not create mention notifications", "event_id", in.EventID, "recipients", len(batch), "error", err)
		svc.metrics.Failures.WithLabelValues(metrics.StageCreate).Inc()
		return
	}

	svc.metrics.NotificationsCreated.Add(float64(len(created)))

	for _, n := range created {
		if err := svc.broker.PublishNotification(ctx, n); err != nil {
			svc.logger.Warn("could not publish notification", "notification_id", n.ID, "error", err)
			svc.metrics.Failures.WithLabelValues(metrics.StagePublish).Inc()
		}
	}
}

// matchMentions keeps the participants whose display name contains any
// token, ignoring case. There is no word-boundary check: "al" matches "Ralph".
func matchMentions(roster []types.Identity, tokens []string, senderID string) []types.Identity {
	seen := map[string]struct{}{}
	var out []types.Identity
	for _, participant := range roster {
		if participant.ID == senderID {
			continue
		}

		if _, ok := seen[participant.ID]; ok {
			continue
		}

		matched := slices.ContainsFunc(tokens, func(token string) bool {
			return textutil.ContainsFold(participant.DisplayName, token)
		})
		if !matched {
			continue
		}

		seen[participant.ID] = struct{}{}
		out = append(out, participant)
	}
	return out
}

func (svc *Service) lookupEventTitle(ctx context.Context, eventID string) result[string] {
	title, err := svc.events.EventTitle(ctx, eventID)
	if errors.Is(err, errs.NotFound) {
		return emptyResult[string]()
	}

	if err != nil {
		svc.logger.Warn("event title lookup failed", "event_id", eventID, "error", err)
		svc.metrics.Failures.WithLabelValues(metrics.StageEventTitle).Inc()
		return failedResult[string](err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return emptyResult[string]()
	}

	return valueResult(title)
}
