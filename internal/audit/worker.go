package audit

import (
	"context"
	"log/slog"
)

// Worker decouples event emission from delivery. Callers enqueue without
// blocking; a single goroutine drains the queue to the publisher.
type Worker struct {
	publisher Publisher
	logger    *slog.Logger
	events    chan Event
	done      chan struct{}
}

// NewWorker creates a worker with the given queue depth.
func NewWorker(publisher Publisher, logger *slog.Logger, queueSize int) *Worker {
	return &Worker{
		publisher: publisher,
		logger:    logger,
		events:    make(chan Event, queueSize),
		done:      make(chan struct{}),
	}
}

// Run drains the queue until ctx is cancelled, then flushes whatever is left.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case event := <-w.events:
			w.deliver(ctx, event)
		case <-ctx.Done():
			for {
				select {
				case event := <-w.events:
					w.deliver(context.WithoutCancel(ctx), event)
				default:
					return
				}
			}
		}
	}
}

// Enqueue hands an event to the worker. A full queue drops the event with a
// log line rather than blocking the request path.
func (w *Worker) Enqueue(event Event) {
	select {
	case w.events <- event:
	default:
		w.logger.Warn("audit queue full, dropping event",
			"event_id", event.ID,
			"action", string(event.Action))
	}
}

// Wait blocks until Run has returned.
func (w *Worker) Wait() {
	<-w.done
}

func (w *Worker) deliver(ctx context.Context, event Event) {
	if err := w.publisher.Publish(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "audit publish failed",
			"event_id", event.ID,
			"error", err)
	}
}
