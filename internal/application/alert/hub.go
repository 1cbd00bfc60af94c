package alert

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"
)

// HubConfig carries the collaborators of a Hub.
type HubConfig struct {
	Reminders  repository.ReminderRepository
	Dismisser  *Dismisser
	Notifier   *Notifier
	Announcers []Announcer
	Location   *time.Location
	Now        func() time.Time // defaults to time.Now
	Log        logger.Logger
	Metrics    *metrics.Metrics
}

// Hub routes polls and user requests to one Watcher per user.
type Hub struct {
	cfg HubConfig

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex // guards watchers
	watchers map[string]*Watcher
	closed   bool
}

// NewHub creates a Hub whose watchers live until parent is cancelled or Close is called.
func NewHub(parent context.Context, cfg HubConfig) *Hub {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	ctx, cancel := context.WithCancel(parent)
	return &Hub{
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
		watchers: make(map[string]*Watcher),
	}
}

// watcher returns the user's watcher, starting it when create is set.
func (h *Hub) watcher(userID string, create bool) *Watcher {
	h.mu.Lock()
	defer h.mu.Unlock()

	if w, ok := h.watchers[userID]; ok {
		return w
	}
	if !create || h.closed {
		return nil
	}
	w := newWatcher(userID, h.cfg.Notifier, h.cfg.Announcers, h.cfg.Log, h.cfg.Metrics)
	h.watchers[userID] = w
	h.cfg.Metrics.ActiveWatchers.Inc()
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer h.cfg.Metrics.ActiveWatchers.Dec()
		w.run(h.ctx)
	}()
	return w
}

// Poll loads every reminder and hands each user's list to that user's watcher.
func (h *Hub) Poll(ctx context.Context) error {
	h.cfg.Metrics.PollsTotal.Inc()

	reminders, err := h.cfg.Reminders.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	at := h.cfg.Now().In(h.cfg.Location)
	grouped := groupByUser(reminders)

	// Users whose reminders are all gone still get a poll so an idle watcher can stop.
	h.mu.Lock()
	for userID := range h.watchers {
		if _, ok := grouped[userID]; !ok {
			grouped[userID] = nil
		}
	}
	h.mu.Unlock()

	for userID, list := range grouped {
		if err := h.pollUser(ctx, userID, at, list); err != nil {
			return err
		}
	}
	h.cfg.Log.Debug(fmt.Sprintf("Polled %d reminders for %d users at %s", len(reminders), len(grouped), ClockString(at)))
	return nil
}

// pollUser hands list to the user's watcher and unregisters the watcher once it retires.
func (h *Hub) pollUser(ctx context.Context, userID string, at time.Time, list []*entity.Reminder) error {
	for {
		w := h.watcher(userID, len(list) > 0)
		if w == nil {
			return nil
		}
		err := w.Poll(ctx, at, list)
		if errors.Is(err, errRetired) {
			// Retired between lookup and send; start a fresh one if there is work.
			h.forget(userID, w)
			if len(list) == 0 {
				return nil
			}
			continue
		}
		if err != nil {
			return err
		}
		if len(list) == 0 {
			// An empty poll retires a watcher with nothing due; the follow-up query
			// observes the exit so the registry never keeps a stopped watcher.
			if _, err := w.Due(ctx); errors.Is(err, errRetired) {
				h.forget(userID, w)
			}
		}
		return nil
	}
}

// forget removes w from the registry if it is still the user's watcher.
func (h *Hub) forget(userID string, w *Watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[userID] == w {
		delete(h.watchers, userID)
	}
}

// Due returns the user's currently due reminder, or nil when none is due.
func (h *Hub) Due(ctx context.Context, userID string) (*entity.Reminder, error) {
	w := h.watcher(userID, false)
	if w == nil {
		return nil, nil
	}
	due, err := w.Due(ctx)
	if errors.Is(err, errRetired) {
		return nil, nil
	}
	return due, err
}

// Acknowledge dismisses the user's due reminder and applies its inventory and deletion effects.
func (h *Hub) Acknowledge(ctx context.Context, userID string) (*Outcome, error) {
	w := h.watcher(userID, false)
	if w == nil {
		return nil, appErrors.ErrNoDueReminder
	}
	r, err := w.Acknowledge(ctx)
	if errors.Is(err, errRetired) {
		return nil, appErrors.ErrNoDueReminder
	}
	if err != nil {
		return nil, err
	}
	h.cfg.Metrics.AcknowledgementsTotal.Inc()
	// The due state is already cleared, so the writes must outlive the caller's request.
	out := h.cfg.Dismisser.Dismiss(context.WithoutCancel(ctx), r)
	return &out, nil
}

// Drop clears the user's due state if reminderID is the reminder currently due.
// Deleting a reminder calls it so a removed reminder stops ringing.
func (h *Hub) Drop(ctx context.Context, userID, reminderID string) error {
	w := h.watcher(userID, false)
	if w == nil {
		return nil
	}
	dropped, err := w.Drop(ctx, reminderID)
	if errors.Is(err, errRetired) {
		return nil
	}
	if err != nil {
		return err
	}
	if dropped {
		h.cfg.Log.Info(fmt.Sprintf("Cleared due reminder %s for user %s after deletion", reminderID, userID))
	}
	return nil
}

// Close stops every watcher and waits for them to exit.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
}
