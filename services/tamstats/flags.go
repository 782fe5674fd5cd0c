package main

import (
	"strings"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/config"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var (
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,engine:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the engine package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// logFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the job will store its logs.",
		Value: "",
	}
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "Optional TOML `file` holding the run configuration. Flags set on the command line take precedence.",
	}
	envFile = cli.StringFlag{
		Name:  "env-file",
		Usage: "Optional .env `file` defining " + envAuthToken + ", used when no auth token is provided otherwise.",
	}
	dashingHost = cli.StringFlag{
		Name:  "dashing-host, d",
		Usage: "Dashing server `host`. A leading http:// is stripped.",
		Value: config.DefaultDashingHost,
	}
	widget = cli.StringFlag{
		Name:  "widget, w",
		Usage: "Dashing `widget` to send data to",
		Value: config.DefaultWidget,
	}
	authToken = cli.StringFlag{
		Name:  "auth-token, a",
		Usage: "Dashing authentication `token` (required)",
	}
	httpEndpoint = cli.StringFlag{
		Name:  "http-endpoint",
		Usage: "HTTP `endpoint` to pull the Sabre stats from (required)",
	}
	loginKey = cli.StringFlag{
		Name:  "login-key, k",
		Usage: "Sabre login `key`",
	}
	numPoints = cli.IntFlag{
		Name:  "num-points, n",
		Usage: "`Number` of data points to plot on the x-axis of the graph",
		Value: config.DefaultNumPoints,
	}
	interval = cli.IntFlag{
		Name:  "interval, i",
		Usage: "`Interval` of data points to plot: only every interval-th record of the selected history is plotted",
		Value: config.DefaultInterval,
	}
	skipLookup = cli.BoolFlag{
		Name:  "skip-lookup, x",
		Usage: "Do not look up the current TAM usage, just graph the historical values",
	}
	historyFile = cli.StringFlag{
		Name:  "history-file, f",
		Usage: "`File` to record stats to. Defaults to the name of this program with the .history extension",
	}
	environment = cli.StringFlag{
		Name: "environment, e",
		Usage: "Dashing `environment` to use, either \"" + config.EnvironmentProduction + "\" (port 80) or \"" +
			config.EnvironmentDevelopment + "\" (port 3030)",
		Value: config.EnvironmentProduction,
	}
)

func appFlags() []cli.Flag {
	return []cli.Flag{
		logLevel,
		logSaveFile,
		workingDirectory,
		configFile,
		envFile,
		dashingHost,
		widget,
		authToken,
		httpEndpoint,
		loginKey,
		numPoints,
		interval,
		skipLookup,
		historyFile,
		environment,
	}
}

func applyFlags(ctx *cli.Context, cfg config.RunConfig) config.RunConfig {
	applyString(ctx, dashingHost, &cfg.DashingHost)
	applyString(ctx, widget, &cfg.Widget)
	applyString(ctx, authToken, &cfg.AuthToken)
	applyString(ctx, httpEndpoint, &cfg.HTTPEndpoint)
	applyString(ctx, loginKey, &cfg.LoginKey)
	applyInt(ctx, numPoints, &cfg.NumPoints)
	applyInt(ctx, interval, &cfg.Interval)
	applyString(ctx, historyFile, &cfg.HistoryFile)
	applyString(ctx, environment, &cfg.Environment)

	name := primaryName(skipLookup.Name)
	if ctx.GlobalIsSet(name) {
		cfg.SkipLookup = ctx.GlobalBool(name)
	}

	return cfg
}

// primaryName returns the long name of a flag declared as "long, short"
func primaryName(flagName string) string {
	return strings.TrimSpace(strings.Split(flagName, ",")[0])
}

func applyString(ctx *cli.Context, flag cli.StringFlag, dest *string) {
	name := primaryName(flag.Name)
	if ctx.GlobalIsSet(name) {
		*dest = ctx.GlobalString(name)
	}
}

func applyInt(ctx *cli.Context, flag cli.IntFlag, dest *int) {
	name := primaryName(flag.Name)
	if ctx.GlobalIsSet(name) {
		*dest = ctx.GlobalInt(name)
	}
}
