package ingest

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/decode"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/filter"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/metrics"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/model"
)

// Source is implemented by the transport the collector pulls raw frames from.
// ReadFrame blocks until a frame arrives or ctx is cancelled.
type Source interface {
	ReadFrame(ctx context.Context) ([]byte, error)
}

// Collector pulls frames from a source, decodes and filters them, and
// accumulates accepted records. Malformed frames and filter rejections are
// discarded silently and never count towards any limit; the two are
// indistinguishable to callers.
type Collector struct {
	source  Source
	filter  filter.Filter
	metrics *metrics.Metrics
	verbose bool
}

func NewCollector(source Source, f filter.Filter, m *metrics.Metrics, verbose bool) *Collector {
	if f == nil {
		f = filter.Default
	}
	return &Collector{source: source, filter: f, metrics: m, verbose: verbose}
}

// Collect blocks on the source until exactly limit accepted records have been
// accumulated, in acceptance order. It returns early only when ctx is
// cancelled, in which case the partial batch is discarded.
func (c *Collector) Collect(ctx context.Context, limit int) (model.Batch, error) {
	batch := make(model.Batch, 0, limit)
	for len(batch) < limit {
		rec, err := c.Next(ctx)
		if err != nil {
			return nil, err
		}
		batch = append(batch, rec)
	}
	return batch, nil
}

// Next returns the next accepted record, retrying the source until one
// arrives. Used directly by the streaming (batch size 0) path where records
// are consumed one at a time without a predetermined batch length.
func (c *Collector) Next(ctx context.Context) (model.Record, error) {
	for {
		frame, err := c.source.ReadFrame(ctx)
		if err != nil {
			return nil, err
		}
		c.metrics.RecordFrameReceived()
		rec, err := decode.Decode(frame)
		if err != nil {
			c.metrics.RecordFrameMalformed()
			continue
		}
		if !c.filter(rec) {
			c.metrics.RecordRecordFiltered()
			continue
		}
		c.metrics.RecordRecordAccepted()
		if c.verbose {
			log.WithField("record", rec).Debug("Processing record")
		}
		return rec, nil
	}
}
