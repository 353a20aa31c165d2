package ingest

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/model"
)

// Sink is implemented by the struct responsible for putting accepted records
// in their final resting place. Implementations must not retry: a failed
// write is operational-fatal and terminates the run.
type Sink interface {
	// WriteRecord persists a single record under the immediate policy. The
	// record is durably committed before WriteRecord returns.
	WriteRecord(ctx context.Context, rec model.Record) error
	// WriteBatch persists a completed batch under the batched policy,
	// all-or-nothing per configured statement.
	WriteBatch(ctx context.Context, batch model.Batch) error
}

// Loop drives repeated Collect→Write cycles until the total budget is
// exhausted or the context is cancelled. It owns the two counters of the run:
// the total accepted-record count and, via Collect, the per-batch count.
type Loop struct {
	collector *Collector
	sink      Sink

	// batchSize 0 selects the immediate policy: a single unbounded streaming
	// cycle with one write per record. N>0 selects the batched policy with
	// fixed batches of N records.
	batchSize int

	// total is the accepted-record budget for the whole run; nil means
	// unbounded. In batched mode the budget is checked between batches only,
	// so a run can overshoot by up to batchSize-1 records.
	total *uint64
}

func NewLoop(collector *Collector, sink Sink, batchSize int, total *uint64) (*Loop, error) {
	if batchSize < 0 {
		return nil, errors.Errorf("invalid batch size %d", batchSize)
	}
	return &Loop{collector: collector, sink: sink, batchSize: batchSize, total: total}, nil
}

// Run executes the ingestion state machine: BOUND → (COLLECT → WRITE)* →
// STOPPED. Cancellation of ctx is the only in-band stop signal; it produces a
// clean stop. Store failures propagate.
func (l *Loop) Run(ctx context.Context) error {
	var err error
	if l.batchSize == 0 {
		err = l.runStreaming(ctx)
	} else {
		err = l.runBatched(ctx)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Info("Stop signal received - shutting down")
		return nil
	}
	return err
}

func (l *Loop) runBatched(ctx context.Context) error {
	var count uint64
	for l.total == nil || count < *l.total {
		batch, err := l.collector.Collect(ctx, l.batchSize)
		if err != nil {
			return err
		}
		if err := l.sink.WriteBatch(ctx, batch); err != nil {
			return err
		}
		count += uint64(l.batchSize)
	}
	log.Infof("Total budget exhausted after %d records", count)
	return nil
}

func (l *Loop) runStreaming(ctx context.Context) error {
	var count uint64
	for l.total == nil || count < *l.total {
		rec, err := l.collector.Next(ctx)
		if err != nil {
			return err
		}
		if err := l.sink.WriteRecord(ctx, rec); err != nil {
			return err
		}
		count++
	}
	log.Infof("Total budget exhausted after %d records", count)
	return nil
}
