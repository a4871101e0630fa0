package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gigmarket/gigchat/metrics"
	"github.com/gigmarket/gigchat/types"
	"github.com/nicolasparada/go-errs"
)

const unknownDisplayName = "Unknown"

type nameExtractor struct {
	field   string
	extract func(types.Profile) *string
}

var (
	fullNameExtractor = nameExtractor{"full_name", func(p types.Profile) *string { return p.FullName }}
	usernameExtractor = nameExtractor{"username", func(p types.Profile) *string { return p.Username }}
	emailExtractor    = nameExtractor{"email", func(p types.Profile) *string { return emailLocalPart(p.Email) }}
)

// displayNameChain is evaluated in order; first non-blank value wins.
var displayNameChain = []nameExtractor{
	fullNameExtractor,
	usernameExtractor,
	emailExtractor,
}

// inlineNameChain applies to rows of the aggregate participants lookup,
// which carry no username.
var inlineNameChain = []nameExtractor{
	fullNameExtractor,
	emailExtractor,
}

func firstName(p types.Profile, chain []nameExtractor) (string, bool) {
	for _, e := range chain {
		v := e.extract(p)
		if v == nil {
			continue
		}

		if s := strings.TrimSpace(*v); s != "" {
			return s, true
		}
	}
	return "", false
}

func emailLocalPart(email *string) *string {
	if email == nil {
		return nil
	}

	local, _, _ := strings.Cut(*email, "@")
	return &local
}

// DisplayName picks the name to show for a profile, falling back
// to "Unknown" when every field of the chain is blank.
func DisplayName(p types.Profile) string {
	if name, ok := firstName(p, displayNameChain); ok {
		return name
	}
	return unknownDisplayName
}

// ResolveIdentity never fails. A missing profile or a failed lookup
// resolves to the "Unknown" identity.
func (svc *Service) ResolveIdentity(ctx context.Context, userID string) types.Identity {
	profile := svc.lookupProfile(ctx, userID)
	if !profile.ok() {
		return types.Identity{ID: userID, DisplayName: unknownDisplayName}
	}

	return types.Identity{
		ID:          userID,
		DisplayName: DisplayName(profile.value),
		AvatarURL:   profile.value.AvatarURL,
	}
}

func (svc *Service) lookupProfile(ctx context.Context, userID string) result[types.Profile] {
	if svc.profileCache != nil {
		if profile, ok := svc.profileCache.Get(userID); ok {
			return valueResult(profile)
		}
	}

	profile, err := svc.profiles.Profile(ctx, userID)
	if errors.Is(err, errs.NotFound) {
		return emptyResult[types.Profile]()
	}

	if err != nil {
		svc.logger.Warn("profile lookup failed", "user_id", userID, "error", err)
		svc.metrics.Failures.WithLabelValues(metrics.StageProfile).Inc()
		return failedResult[types.Profile](err)
	}

	if svc.profileCache != nil {
		svc.profileCache.Add(userID, profile)
	}

	return valueResult(profile)
}
