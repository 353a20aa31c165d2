package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/swdev-SL/logaggregate/internal/common"
	commonconfig "github.com/swdev-SL/logaggregate/internal/common/config"
	"github.com/swdev-SL/logaggregate/internal/logaggregate"
	"github.com/swdev-SL/logaggregate/internal/logaggregate/configuration"
)

const CustomConfigLocation = "config"

func init() {
	pflag.StringSlice(
		CustomConfigLocation,
		[]string{},
		"Fully qualified path to application configuration file (for multiple config files repeat this arg or separate paths with commas)",
	)
	pflag.StringP("database", "D", "", "Postgres connection string of the target store")
	pflag.StringSliceP("create", "c", nil, "Schema bootstrap statement (repeatable)")
	pflag.StringSliceP("insert", "i", nil, "Write statement applied per accepted record (repeatable)")
	pflag.Int("batch", 0, "Records per batch (0 = write each record as it arrives)")
	pflag.StringP("bind", "b", "", "Datagram endpoint to listen on: ip://host:port or unix://path")
	pflag.StringP("exporter", "e", "", "Log exporter to auto-discover a binding from (not implemented)")
	pflag.Uint64P("total", "t", 0, "Stop after this many accepted records (0 = run until interrupted)")
	pflag.BoolP("verbose", "v", false, "Log every accepted record")
	pflag.BoolP("wipe-existing", "X", false, "Run the configured wipe statements before bootstrap")
	pflag.Parse()
}

func main() {
	common.ConfigureLogging()
	common.BindCommandlineArguments()

	var config configuration.LogAggregateConfiguration
	userSpecifiedConfigs := viper.GetStringSlice(CustomConfigLocation)

	common.LoadConfig(&config, "./config/logaggregate", userSpecifiedConfigs)

	if err := config.Validate(); err != nil {
		commonconfig.LogValidationErrors(err)
		log.Fatalf("Invalid configuration: %s", err)
	}

	opts := logaggregate.RunOptions{
		Verbose:      viper.GetBool("verbose"),
		WipeExisting: viper.GetBool("wipe-existing"),
	}
	if total := viper.GetUint64("total"); total > 0 {
		opts.Total = &total
	}

	logaggregate.Run(&config, opts)
}
