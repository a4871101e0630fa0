package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gigchat"

// Roster resolution paths.
const (
	PathAggregate    = "aggregate"
	PathParticipants = "participants"
	PathNone         = "none"
)

// Stages where a best-effort failure was swallowed.
const (
	StageProfile    = "profile"
	StageRoster     = "roster"
	StageEventTitle = "event_title"
	StageCreate     = "create_notifications"
	StagePublish    = "publish_notification"
)

type Metrics struct {
	MentionsParsed       prometheus.Counter
	NotificationsCreated prometheus.Counter
	RosterResolutions    *prometheus.CounterVec
	Failures             *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MentionsParsed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mentions_parsed_total",
			Help:      "Mention tokens parsed from sent messages.",
		}),
		NotificationsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Mention notifications written to the store.",
		}),
		RosterResolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_resolutions_total",
			Help:      "Roster resolutions by the path that produced them.",
		}, []string{"path"}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swallowed_failures_total",
			Help:      "Failures logged and swallowed during mention notification.",
		}, []string{"stage"}),
	}
}
