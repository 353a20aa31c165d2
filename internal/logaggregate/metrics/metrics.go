package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBOperation string

const (
	DBOperationInsert      DBOperation = "insert"
	DBOperationBatchInsert DBOperation = "batch_insert"
	DBOperationBootstrap   DBOperation = "bootstrap"
	DBOperationWipe        DBOperation = "wipe"
)

const MetricsPrefix = "logaggregate_"

// Metrics holds the ingestion pipeline counters. Discarded frames are counted
// here for observability but are never logged as errors.
type Metrics struct {
	framesReceived  prometheus.Counter
	framesMalformed prometheus.Counter
	recordsFiltered prometheus.Counter
	recordsAccepted prometheus.Counter
	recordsWritten  prometheus.Counter
	batchesWritten  prometheus.Counter
	dbErrorsCounter *prometheus.CounterVec
}

func NewMetrics(prefix string) *Metrics {
	return &Metrics{
		framesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "frames_received",
			Help: "Number of raw frames read from the transport",
		}),
		framesMalformed: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "frames_malformed",
			Help: "Number of frames discarded because they did not decode to a JSON object",
		}),
		recordsFiltered: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "records_filtered",
			Help: "Number of decoded records discarded by the acceptance filter",
		}),
		recordsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "records_accepted",
			Help: "Number of records accepted into the pipeline",
		}),
		recordsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "records_written",
			Help: "Number of records written to the database",
		}),
		batchesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: prefix + "batches_written",
			Help: "Number of batches written to the database",
		}),
		dbErrorsCounter: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "db_errors",
			Help: "Number of database errors grouped by database operation",
		}, []string{"operation"}),
	}
}

var m = NewMetrics(MetricsPrefix)

func Get() *Metrics {
	return m
}

func (m *Metrics) RecordFrameReceived()  { m.framesReceived.Inc() }
func (m *Metrics) RecordFrameMalformed() { m.framesMalformed.Inc() }
func (m *Metrics) RecordRecordFiltered() { m.recordsFiltered.Inc() }
func (m *Metrics) RecordRecordAccepted() { m.recordsAccepted.Inc() }

func (m *Metrics) RecordRecordsWritten(n int) {
	m.recordsWritten.Add(float64(n))
}

func (m *Metrics) RecordBatchWritten() {
	m.batchesWritten.Inc()
}

func (m *Metrics) RecordDBError(operation DBOperation) {
	m.dbErrorsCounter.With(map[string]string{"operation": string(operation)}).Inc()
}
