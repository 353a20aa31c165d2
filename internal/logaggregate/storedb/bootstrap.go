package storedb

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/metrics"
)

// Bootstrap executes the configured DDL statements once at startup, in order.
// Statements are expected to be idempotent (CREATE TABLE IF NOT EXISTS style);
// any failure aborts startup.
func Bootstrap(ctx context.Context, db Database, create []string, m *metrics.Metrics) error {
	for _, stmt := range create {
		if _, err := db.Exec(ctx, stmt); err != nil {
			m.RecordDBError(metrics.DBOperationBootstrap)
			return errors.WithMessagef(err, "error executing bootstrap statement %q", stmt)
		}
	}
	log.Infof("Executed %d schema bootstrap statements", len(create))
	return nil
}

// Wipe executes the configured wipe statements, dropping any state left over
// from a previous run. Only invoked when the operator passes --wipe-existing.
func Wipe(ctx context.Context, db Database, wipe []string, m *metrics.Metrics) error {
	for _, stmt := range wipe {
		if _, err := db.Exec(ctx, stmt); err != nil {
			m.RecordDBError(metrics.DBOperationWipe)
			return errors.WithMessagef(err, "error executing wipe statement %q", stmt)
		}
	}
	log.Infof("Executed %d wipe statements", len(wipe))
	return nil
}
