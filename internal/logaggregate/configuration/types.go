package configuration

type LogAggregateConfiguration struct {
	// Postgres connection string for the target store
	Database string `validate:"required"`
	// Schema bootstrap statements, executed once at startup in order
	Create []string `validate:"required,min=1,dive,required"`
	// Parameterized write statements applied per accepted record, with @name
	// placeholders bound from the merged record
	Insert []string `validate:"required,min=1,dive,required"`
	// Default field values merged under each record; the record's own fields
	// take priority on key collision
	Defaults map[string]interface{}
	// Number of accepted records per batch. 0 selects the immediate policy:
	// each record is written and committed as it arrives
	Batch int `validate:"gte=0"`
	// Transport to listen on: ip://host:port (default scheme) or unix://path
	Bind string
	// Log exporter to auto-discover a binding from. Unimplemented; configuring
	// it is a startup error
	Exporter string
	// Statements executed before Create when --wipe-existing is passed
	Wipe []string
	// Port to expose prometheus metrics on. 0 disables the metrics endpoint
	MetricsPort int `validate:"gte=0"`
}
