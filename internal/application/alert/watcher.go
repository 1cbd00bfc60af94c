package alert

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"medialert/internal/domain/entity"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"
)

// Announcer pushes a due reminder to an outbound channel once.
type Announcer interface {
	Name() string
	Announce(ctx context.Context, r entity.Reminder) error
}

// minuteLayout keys the fired-reminder memory to a calendar minute.
const minuteLayout = "2006-01-02 15:04"

type pollMsg struct {
	at        time.Time
	reminders []*entity.Reminder
}

type dropMsg struct {
	reminderID string
	reply      chan bool
}

type ackMsg struct {
	reply chan ackReply
}

type ackReply struct {
	reminder entity.Reminder
	err      error
}

// Watcher owns the due state of a single user. All state lives on its goroutine;
// callers talk to it through Poll, Due and Acknowledge.
type Watcher struct {
	userID     string
	notifier   *Notifier
	announcers []Announcer
	log        logger.Logger
	metrics    *metrics.Metrics

	pollCh  chan pollMsg
	queryCh chan chan *entity.Reminder
	ackCh   chan ackMsg
	dropCh  chan dropMsg
	done    chan struct{}

	// retired is set before done is closed when the watcher exits for lack of work.
	retired bool
}

// errRetired is returned by a watcher that exited because its user had nothing left to watch.
var errRetired = errors.New("watcher retired")

func newWatcher(userID string, notifier *Notifier, announcers []Announcer, log logger.Logger, m *metrics.Metrics) *Watcher {
	return &Watcher{
		userID:     userID,
		notifier:   notifier,
		announcers: announcers,
		log:        log.With("user_id", userID),
		metrics:    m,
		pollCh:     make(chan pollMsg),
		queryCh:    make(chan chan *entity.Reminder),
		ackCh:      make(chan ackMsg),
		dropCh:     make(chan dropMsg),
		done:       make(chan struct{}),
	}
}

// run is the watcher loop. It returns when ctx is cancelled, or when a poll brings
// no reminders while nothing is due, after stopping the tone and waiting for
// in-flight announcements.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var (
		due         *entity.Reminder
		stopTone    func()
		firedMinute string
		fired       = make(map[string]struct{})
		announcing  sync.WaitGroup
	)

	defer func() {
		if stopTone != nil {
			stopTone()
		}
		announcing.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case msg := <-w.pollCh:
			if minute := msg.at.Format(minuteLayout); minute != firedMinute {
				firedMinute = minute
				clear(fired)
			}
			if due != nil {
				continue
			}
			if len(msg.reminders) == 0 {
				w.retired = true
				w.log.Debug("No reminders left, stopping watcher")
				return
			}
			r, ok := FindDue(msg.reminders, ClockString(msg.at), fired)
			if !ok {
				continue
			}
			snapshot := *r
			due = &snapshot
			fired[r.ID] = struct{}{}
			stopTone = w.notifier.Start()
			w.metrics.DueRemindersTotal.Inc()
			w.log.Info(fmt.Sprintf("Reminder %s for %s is due at %s", r.ID, r.MedicineName, r.Time))

			for _, a := range w.announcers {
				announcing.Add(1)
				go func(a Announcer, r entity.Reminder) {
					defer announcing.Done()
					w.announce(ctx, a, r)
				}(a, snapshot)
			}

		case reply := <-w.queryCh:
			if due == nil {
				reply <- nil
				continue
			}
			snapshot := *due
			reply <- &snapshot

		case msg := <-w.dropCh:
			if due == nil || due.ID != msg.reminderID {
				msg.reply <- false
				continue
			}
			stopTone()
			stopTone = nil
			due = nil
			msg.reply <- true

		case msg := <-w.ackCh:
			if due == nil {
				msg.reply <- ackReply{err: appErrors.ErrNoDueReminder}
				continue
			}
			stopTone()
			stopTone = nil
			msg.reply <- ackReply{reminder: *due}
			due = nil
		}
	}
}

func (w *Watcher) announce(ctx context.Context, a Announcer, r entity.Reminder) {
	if err := a.Announce(ctx, r); err != nil {
		w.metrics.AnnouncementsTotal.WithLabelValues(a.Name(), "error").Inc()
		w.log.Error(fmt.Sprintf("Failed to announce reminder %s via %s", r.ID, a.Name()), err)
		return
	}
	w.metrics.AnnouncementsTotal.WithLabelValues(a.Name(), "ok").Inc()
}

// Poll hands the watcher the poll time, already in the configured location, and the user's reminders.
func (w *Watcher) Poll(ctx context.Context, at time.Time, reminders []*entity.Reminder) error {
	select {
	case w.pollCh <- pollMsg{at: at, reminders: reminders}:
		return nil
	case <-w.done:
		return w.exitErr()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Due returns a copy of the currently due reminder, or nil.
func (w *Watcher) Due(ctx context.Context) (*entity.Reminder, error) {
	reply := make(chan *entity.Reminder, 1)
	select {
	case w.queryCh <- reply:
	case <-w.done:
		return nil, w.exitErr()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return <-reply, nil
}

// Acknowledge clears the due state, stops the tone and returns the reminder that was due.
// It returns ErrNoDueReminder when nothing is due.
func (w *Watcher) Acknowledge(ctx context.Context) (entity.Reminder, error) {
	msg := ackMsg{reply: make(chan ackReply, 1)}
	select {
	case w.ackCh <- msg:
	case <-w.done:
		return entity.Reminder{}, w.exitErr()
	case <-ctx.Done():
		return entity.Reminder{}, ctx.Err()
	}
	res := <-msg.reply
	return res.reminder, res.err
}

// Drop clears the due state when reminderID is the due reminder, stopping its tone.
// It reports whether anything was cleared.
func (w *Watcher) Drop(ctx context.Context, reminderID string) (bool, error) {
	msg := dropMsg{reminderID: reminderID, reply: make(chan bool, 1)}
	select {
	case w.dropCh <- msg:
	case <-w.done:
		return false, w.exitErr()
	case <-ctx.Done():
		return false, ctx.Err()
	}
	return <-msg.reply, nil
}

// exitErr must only be called once done is closed.
func (w *Watcher) exitErr() error {
	if w.retired {
		return errRetired
	}
	return context.Canceled
}
