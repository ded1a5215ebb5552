package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Writer consumes upsert requests off a buffered queue so ledger writes
// never fail the request that triggered them. A single consumer goroutine
// applies writes in enqueue order; failures are logged, never returned to
// the caller, and never roll back the job or task state.
type Writer struct {
	upserter *Upserter
	queue    chan JobSnapshot
	timeout  time.Duration
	log      zerolog.Logger
	wg       sync.WaitGroup
	once     sync.Once
}

func NewWriter(upserter *Upserter, queueSize int, timeout time.Duration, log zerolog.Logger) *Writer {
	if queueSize <= 0 {
		queueSize = 256
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Writer{
		upserter: upserter,
		queue:    make(chan JobSnapshot, queueSize),
		timeout:  timeout,
		log:      log,
	}
}

func (w *Writer) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for snap := range w.queue {
			w.write(snap)
		}
	}()
}

// Enqueue hands a snapshot to the background writer. A full queue blocks
// the caller instead of dropping or reordering updates.
func (w *Writer) Enqueue(snap JobSnapshot) {
	select {
	case w.queue <- snap:
	default:
		w.log.Warn().Str("job_id", snap.JobID.String()).Msg("ledger queue full, applying backpressure")
		w.queue <- snap
	}
}

// Close stops accepting writes and drains the queue.
func (w *Writer) Close() {
	w.once.Do(func() { close(w.queue) })
	w.wg.Wait()
}

func (w *Writer) write(snap JobSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.upserter.Upsert(ctx, snap); err != nil {
		w.log.Error().Err(err).
			Str("job_id", snap.JobID.String()).
			Str("file", w.upserter.FilePath(snap.ScheduledDate)).
			Msg("ledger upsert failed")
	}
}
