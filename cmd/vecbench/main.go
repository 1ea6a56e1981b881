package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// config holds the flags shared by every command.
type config struct {
	logLevel string
	reserve  int
	noColor  bool
}

func main() {
	cfg := &config{}
	app := kingpin.New("vecbench", "Run workloads against vector.Vector and report growth and memory use.")
	app.HelpFlag.Short('h')
	app.Flag("log.level", "Only log messages with the given severity or above. One of: [debug, info, warn, error]").
		Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")
	app.Flag("reserve", "Reserve this many slots before running the workload.").
		Default("0").IntVar(&cfg.reserve)
	app.Flag("no-color", "Disable colored output.").BoolVar(&cfg.noColor)

	addWorkloadCommands(app, cfg)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
