package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/pkg/logger"
)

const defaultSendTimeout = 30 * time.Second

// Notifier delivers a single contact notification
type Notifier interface {
	NotifyNewMessage(ctx context.Context, msg *entities.Message) error
}

// NotificationDispatcher sends contact notifications off the request path.
// Each message is attempted once; failures are logged and dropped.
type NotificationDispatcher struct {
	notifier    Notifier
	queue       chan *entities.Message
	sendTimeout time.Duration
	stop        chan struct{}
	done        chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

func NewNotificationDispatcher(notifier Notifier, queueSize int) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &NotificationDispatcher{
		notifier:    notifier,
		queue:       make(chan *entities.Message, queueSize),
		sendTimeout: defaultSendTimeout,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Enqueue never blocks; it reports false when the queue is full
func (d *NotificationDispatcher) Enqueue(msg *entities.Message) bool {
	select {
	case d.queue <- msg:
		return true
	default:
		logger.Warn(context.Background(), "Notification queue full, dropping contact notification",
			zap.String("message_id", msg.ID.String()))
		return false
	}
}

// Start processes the queue until ctx is cancelled or Stop is called.
// On Stop, already queued messages are still delivered, even if ctx is cancelled meanwhile.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}
	d.started = true
	d.mu.Unlock()
	defer close(d.done)

	logger.Info(ctx, "Starting contact notification dispatcher", zap.Int("queue_size", cap(d.queue)))

	for {
		select {
		case <-d.stop:
			d.drain(context.WithoutCancel(ctx))
			logger.Info(context.Background(), "Notification dispatcher stopped")
			return
		case <-ctx.Done():
			logger.Info(context.Background(), "Notification dispatcher stopped (context cancelled)")
			return
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		}
	}
}

// Stop asks the worker to flush the queue and waits for it to exit, or for ctx to end.
// When Start has not run yet, the next Start drains and returns immediately.
func (d *NotificationDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.stop)
	}
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *NotificationDispatcher) drain(ctx context.Context) {
	for {
		select {
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, msg *entities.Message) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.notifier.NotifyNewMessage(sendCtx, msg); err != nil {
		logger.Error(ctx, "Failed to send contact notification",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err),
		)
	}
}
