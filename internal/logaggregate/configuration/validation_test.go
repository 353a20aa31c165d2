package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() LogAggregateConfiguration {
	return LogAggregateConfiguration{
		Database: "postgres://localhost/logs",
		Create:   []string{`CREATE TABLE IF NOT EXISTS events (msg text)`},
		Insert:   []string{`INSERT INTO events (msg) VALUES (@msg)`},
		Batch:    10,
		Bind:     "ip://localhost:9999",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingDatabase(t *testing.T) {
	config := validConfig()
	config.Database = ""
	assert.Error(t, config.Validate())
}

func TestValidate_MissingCreateStatements(t *testing.T) {
	config := validConfig()
	config.Create = nil
	assert.Error(t, config.Validate())

	config.Create = []string{}
	assert.Error(t, config.Validate())
}

func TestValidate_MissingInsertStatements(t *testing.T) {
	config := validConfig()
	config.Insert = nil
	assert.Error(t, config.Validate())

	config.Insert = []string{""}
	assert.Error(t, config.Validate())
}

func TestValidate_NoBindingConfigured(t *testing.T) {
	config := validConfig()
	config.Bind = ""
	assert.ErrorIs(t, config.Validate(), ErrNoBinding)
}

func TestValidate_ExporterIsUnsupported(t *testing.T) {
	config := validConfig()
	config.Bind = ""
	config.Exporter = "journald"
	assert.ErrorIs(t, config.Validate(), ErrExporterUnsupported)
}

func TestValidate_BindTakesPrecedenceOverExporter(t *testing.T) {
	config := validConfig()
	config.Exporter = "journald"
	assert.NoError(t, config.Validate())
}

func TestValidate_ZeroBatchIsImmediateMode(t *testing.T) {
	config := validConfig()
	config.Batch = 0
	assert.NoError(t, config.Validate())
}
