package storedb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/ingest"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/metrics"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/model"
)

// Database is the slice of pgxpool.Pool the sink needs. Narrowed for testing.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// StoreDb applies accepted records to the database. Write statements use
// @name placeholders bound from the merged record (configured defaults
// overlaid with the record's own fields, record fields winning).
//
// Failed writes are not retried: the caller is expected to crash and restart.
type StoreDb struct {
	db       Database
	inserts  []string
	defaults map[string]interface{}
	metrics  *metrics.Metrics
}

func NewStoreDb(db Database, inserts []string, defaults map[string]interface{}, m *metrics.Metrics) ingest.Sink {
	return &StoreDb{db: db, inserts: inserts, defaults: defaults, metrics: m}
}

// WriteRecord implements the immediate policy: every configured statement is
// executed and committed for the record before the next record is processed.
// Loses at most the single in-flight record on interruption.
func (s *StoreDb) WriteRecord(ctx context.Context, rec model.Record) error {
	for _, stmt := range s.inserts {
		args := pgx.NamedArgs(model.MergeDefaults(s.defaults, rec))
		if _, err := s.db.Exec(ctx, stmt, args); err != nil {
			s.metrics.RecordDBError(metrics.DBOperationInsert)
			return errors.WithMessage(err, "error inserting record")
		}
	}
	s.metrics.RecordRecordsWritten(1)
	return nil
}

// WriteBatch implements the batched policy: each configured statement is
// applied to every record of the batch inside one transaction, so a
// statement-batch lands all-or-nothing. An interruption mid-batch can lose
// the entire in-flight batch; that is the documented throughput trade-off.
func (s *StoreDb) WriteBatch(ctx context.Context, batch model.Batch) error {
	if len(batch) == 0 {
		return nil
	}
	for _, stmt := range s.inserts {
		if err := s.writeStatementBatch(ctx, stmt, batch); err != nil {
			s.metrics.RecordDBError(metrics.DBOperationBatchInsert)
			return errors.WithMessage(err, "error inserting batch")
		}
	}
	s.metrics.RecordBatchWritten()
	s.metrics.RecordRecordsWritten(len(batch))
	return nil
}

func (s *StoreDb) writeStatementBatch(ctx context.Context, stmt string, batch model.Batch) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			log.WithError(rollbackErr).Warn("Error rolling back transaction")
		}
	}()

	b := &pgx.Batch{}
	for _, rec := range batch {
		b.Queue(stmt, pgx.NamedArgs(model.MergeDefaults(s.defaults, rec)))
	}
	results := tx.SendBatch(ctx, b)
	for range batch {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	if err := results.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
