package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigmarket/gigchat/metrics"
	"github.com/gigmarket/gigchat/types"
	"golang.org/x/sync/errgroup"
)

// rosterSource builds the roster of an event. Sources differ in cost,
// not in the roster they produce.
type rosterSource interface {
	name() string
	roster(ctx context.Context, eventID string) ([]types.Identity, error)
}

// aggregateRoster reads participants already joined with their profiles
// and only looks up profiles for rows without a usable inline name.
type aggregateRoster struct {
	svc *Service
}

func (aggregateRoster) name() string { return metrics.PathAggregate }

func (src aggregateRoster) roster(ctx context.Context, eventID string) ([]types.Identity, error) {
	rows, err := src.svc.participants.ParticipantsWithProfiles(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("participants with profiles: %w", err)
	}

	out := make([]types.Identity, len(rows))
	for i, row := range rows {
		name, ok := firstName(types.Profile{FullName: row.FullName, Email: row.Email}, inlineNameChain)
		if ok {
			out[i] = types.Identity{ID: row.UserID, DisplayName: name, AvatarURL: row.AvatarURL}
			continue
		}

		identity := src.svc.ResolveIdentity(ctx, row.UserID)
		if identity.AvatarURL == nil {
			identity.AvatarURL = row.AvatarURL
		}
		out[i] = identity
	}

	return out, nil
}

// participantRoster reads bare participant records and resolves
// every identity independently.
type participantRoster struct {
	svc *Service
}

func (participantRoster) name() string { return metrics.PathParticipants }

func (src participantRoster) roster(ctx context.Context, eventID string) ([]types.Identity, error) {
	participants, err := src.svc.participants.Participants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("participants: %w", err)
	}

	out := make([]types.Identity, len(participants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(src.svc.rosterConcurrency)

	for i, p := range participants {
		g.Go(func() error {
			out[i] = src.svc.ResolveIdentity(gctx, p.UserID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// ResolveRoster returns the participants of an event in store order.
// It never fails: when every source fails the roster is empty.
func (svc *Service) ResolveRoster(ctx context.Context, eventID string) []types.Identity {
	return svc.resolveRoster(ctx, eventID).value
}

func (svc *Service) resolveRoster(ctx context.Context, eventID string) result[[]types.Identity] {
	var failures []error
	for _, src := range svc.rosterSources {
		roster, err := src.roster(ctx, eventID)
		if err != nil {
			svc.logger.Warn("roster source failed", "source", src.name(), "event_id", eventID, "error", err)
			failures = append(failures, err)
			continue
		}

		svc.metrics.RosterResolutions.WithLabelValues(src.name()).Inc()

		if len(roster) == 0 {
			return emptyResult[[]types.Identity]()
		}

		return valueResult(roster)
	}

	err := errors.Join(failures...)
	svc.logger.Error("could not resolve roster", "event_id", eventID, "error", err)
	svc.metrics.RosterResolutions.WithLabelValues(metrics.PathNone).Inc()
	svc.metrics.Failures.WithLabelValues(metrics.StageRoster).Inc()

	return failedResult[[]types.Identity](err)
}
