package pubsub

import (
	"context"
	"sync"

	"github.com/gigmarket/gigchat/types"
)

// Local delivers notifications to subscribers within the same process.
type Local struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]func(types.Notification)
}

func NewLocal() *Local {
	return &Local{
		subs: map[string]map[uint64]func(types.Notification){},
	}
}

func (l *Local) PublishNotification(ctx context.Context, notification types.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.RLock()
	fns := make([]func(types.Notification), 0, len(l.subs[notification.RecipientID]))
	for _, fn := range l.subs[notification.RecipientID] {
		fns = append(fns, fn)
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(notification)
	}

	return nil
}

func (l *Local) SubscribeNotifications(userID string, fn func(types.Notification)) (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	subID := l.nextID
	if l.subs[userID] == nil {
		l.subs[userID] = map[uint64]func(types.Notification){}
	}
	l.subs[userID][subID] = fn

	return func() error {
		l.mu.Lock()
		defer l.mu.Unlock()

		delete(l.subs[userID], subID)
		if len(l.subs[userID]) == 0 {
			delete(l.subs, userID)
		}
		return nil
	}, nil
}
