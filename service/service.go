package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gigmarket/gigchat/metrics"
	"github.com/gigmarket/gigchat/pubsub"
	"github.com/gigmarket/gigchat/types"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultBackgroundTimeout = 15 * time.Second
	defaultRosterConcurrency = 8
)

type Config struct {
	Events        EventStore
	Participants  ParticipantDirectory
	Profiles      ProfileDirectory
	Notifications NotificationStore
	Broker        Broker
	Metrics       *metrics.Metrics
	Logger        *slog.Logger

	BaseCtx           context.Context
	BackgroundTimeout time.Duration
	RosterConcurrency int
	// AggregateRoster enables the privileged participants-with-profiles
	// lookup. Without it rosters are rebuilt from participant records.
	AggregateRoster bool
	// Found profiles are cached when both are set.
	ProfileCacheSize int
	ProfileCacheTTL  time.Duration
}

type Service struct {
	events        EventStore
	participants  ParticipantDirectory
	profiles      ProfileDirectory
	notifications NotificationStore
	broker        Broker
	metrics       *metrics.Metrics
	logger        *slog.Logger

	rosterSources     []rosterSource
	rosterConcurrency int
	profileCache      *lru.LRU[string, types.Profile]
	now               func() time.Time

	baseCtx           context.Context
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
	errs              chan error

	mu     sync.Mutex
	closed bool
}

func New(cfg *Config) *Service {
	svc := &Service{
		events:        cfg.Events,
		participants:  cfg.Participants,
		profiles:      cfg.Profiles,
		notifications: cfg.Notifications,
		broker:        cfg.Broker,
		metrics:       cfg.Metrics,
		logger:        cfg.Logger,

		rosterConcurrency: cfg.RosterConcurrency,
		now:               time.Now,

		baseCtx:           cfg.BaseCtx,
		backgroundTimeout: cfg.BackgroundTimeout,
		errs:              make(chan error, 1),
	}

	if svc.broker == nil {
		svc.broker = pubsub.NewLocal()
	}
	if svc.metrics == nil {
		svc.metrics = metrics.New(prometheus.NewRegistry())
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.DiscardHandler)
	}
	if svc.rosterConcurrency <= 0 {
		svc.rosterConcurrency = defaultRosterConcurrency
	}
	if svc.baseCtx == nil {
		svc.baseCtx = context.Background()
	}
	if svc.backgroundTimeout <= 0 {
		svc.backgroundTimeout = defaultBackgroundTimeout
	}

	if cfg.ProfileCacheSize > 0 && cfg.ProfileCacheTTL > 0 {
		svc.profileCache = lru.NewLRU[string, types.Profile](cfg.ProfileCacheSize, nil, cfg.ProfileCacheTTL)
	}

	if cfg.AggregateRoster {
		svc.rosterSources = append(svc.rosterSources, aggregateRoster{svc: svc})
	}
	svc.rosterSources = append(svc.rosterSources, participantRoster{svc: svc})

	return svc
}

func (svc *Service) Errs() <-chan error {
	return svc.errs
}

// Close waits for background work and closes Errs.
// Work scheduled after Close is dropped. Closing twice is a no-op.
func (svc *Service) Close() error {
	svc.mu.Lock()
	if svc.closed {
		svc.mu.Unlock()
		return nil
	}
	svc.closed = true
	svc.mu.Unlock()

	svc.wg.Wait()
	close(svc.errs)
	return nil
}

func (svc *Service) background(fn func(ctx context.Context) error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.closed {
		svc.logger.Warn("service closed, dropping background work")
		return
	}

	svc.wg.Go(func() {
		defer func() {
			if rcv := recover(); rcv != nil {
				select {
				case svc.errs <- fmt.Errorf("service background panic: %v", rcv):
				default:
				}
			}
		}()

		ctx, cancel := context.WithTimeout(svc.baseCtx, svc.backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			select {
			case svc.errs <- fmt.Errorf("service background error: %w", err):
			default:
			}
		}
	})
}
