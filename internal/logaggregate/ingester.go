package logaggregate

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/swdev-SL/logaggregate/internal/common/app"
	"github.com/swdev-SL/logaggregate/internal/common/database"
	"github.com/swdev-SL/logaggregate/internal/common/serve"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/configuration"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/filter"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/ingest"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/metrics"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/storedb"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/transport"
)

// RunOptions are the run-scoped limits supplied on the command line, as
// opposed to the per-deployment configuration file.
type RunOptions struct {
	// Total is the accepted-record budget for the run; nil means run until
	// interrupted.
	Total *uint64
	// Verbose enables per-record diagnostic logging of accepted records.
	Verbose bool
	// WipeExisting runs the configured wipe statements before bootstrap.
	WipeExisting bool
}

// Run will bind the configured datagram endpoint and pump decoded, filtered
// records into the database until the total budget is exhausted or a SIGTERM
// is received.
func Run(config *configuration.LogAggregateConfiguration, opts RunOptions) {
	ctx := app.CreateContextWithShutdown()

	binding, err := transport.ParseBind(config.Bind)
	if err != nil {
		panic(errors.WithMessage(err, "Invalid bind configuration"))
	}

	log.Info("Opening connection pool to postgres")
	m := metrics.Get()
	db, err := database.OpenPgxPool(ctx, config.Database)
	if err != nil {
		panic(errors.WithMessage(err, "Error opening connection to postgres"))
	}
	defer db.Close()

	if opts.WipeExisting {
		if err := storedb.Wipe(ctx, db, config.Wipe, m); err != nil {
			panic(errors.WithMessage(err, "Error wiping existing data"))
		}
	}
	if err := storedb.Bootstrap(ctx, db, config.Create, m); err != nil {
		panic(errors.WithMessage(err, "Error bootstrapping schema"))
	}

	if config.MetricsPort > 0 {
		shutdownMetricServer := serve.ListenAndServeMetrics(config.MetricsPort)
		defer shutdownMetricServer()
	}

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	source, err := binding.Listen()
	if err != nil {
		panic(errors.WithMessage(err, "Error binding transport"))
	}
	defer source.Close()
	log.Infof("Listening on %s", binding)

	collector := ingest.NewCollector(source, filter.Default, m, opts.Verbose)
	sink := storedb.NewStoreDb(db, config.Insert, config.Defaults, m)
	loop, err := ingest.NewLoop(collector, sink, config.Batch, opts.Total)
	if err != nil {
		panic(errors.WithMessage(err, "Invalid pipeline configuration"))
	}

	if err := loop.Run(ctx); err != nil {
		panic(errors.WithMessage(err, "Error running ingestion pipeline"))
	}
}
