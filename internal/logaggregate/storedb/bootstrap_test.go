package storedb

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swdev-SL/logaggregate/internal/logaggregate/metrics"
)

func TestBootstrap_ExecutesStatementsInOrder(t *testing.T) {
	db := &fakeDb{}
	create := []string{
		`CREATE TABLE IF NOT EXISTS events (region text, msg text)`,
		`CREATE INDEX IF NOT EXISTS events_region ON events (region)`,
	}

	err := Bootstrap(context.Background(), db, create, metrics.Get())
	require.NoError(t, err)

	require.Len(t, db.execs, 2)
	assert.Equal(t, create[0], db.execs[0].sql)
	assert.Equal(t, create[1], db.execs[1].sql)
}

func TestBootstrap_ErrorAbortsStartup(t *testing.T) {
	db := &fakeDb{execErr: errors.New("syntax error")}

	err := Bootstrap(context.Background(), db, []string{`CREATE TABLE events ()`}, metrics.Get())
	assert.Error(t, err)
}

func TestWipe_ExecutesStatementsInOrder(t *testing.T) {
	db := &fakeDb{}
	wipe := []string{`DROP TABLE IF EXISTS events`, `DROP TABLE IF EXISTS audit`}

	err := Wipe(context.Background(), db, wipe, metrics.Get())
	require.NoError(t, err)

	require.Len(t, db.execs, 2)
	assert.Equal(t, wipe[0], db.execs[0].sql)
	assert.Equal(t, wipe[1], db.execs[1].sql)
}

func TestWipe_NoStatementsIsANoOp(t *testing.T) {
	db := &fakeDb{}
	require.NoError(t, Wipe(context.Background(), db, nil, metrics.Get()))
	assert.Empty(t, db.execs)
}
