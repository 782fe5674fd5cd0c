package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/iulianpascalau/dashing-jobs/commonGo"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/config"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/factory"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFilePrefix        = "tamstats"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
	envAuthToken         = "DASHING_AUTH_TOKEN"
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

var (
	jobHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

	log = logger.GetOrCreate("tamstats")
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = jobHelpTemplate
	app.Name = "Sabre TAM usage Dashing job"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Looks up the current Sabre TAM pool usage, records it in a history file and graphs the recent " +
		"history on a Dashing widget. Runs once, schedule it externally"
	app.Flags = appFlags()
	app.Authors = []cli.Author{
		{
			Name:  "Iulian Pascalau",
			Email: "iulian.pascalau@gmail.com",
		},
	}

	app.Action = run

	defer func() {
		if fileLogging != nil {
			_ = fileLogging.Close()
		}
	}()

	err := app.Run(os.Args)
	if errors.Is(err, config.ErrBadEnvironment) {
		_, _ = fmt.Fprintf(os.Stderr, "Bad environment setting:\nTry %s -h\n", os.Args[0])
		os.Exit(1)
	}
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	cfg, err := loadRunConfig(ctx, os.Args[0])
	if err != nil {
		return err
	}

	fileLogging, err = commonGo.AttachFileLogger(log, defaultLogsPath, logFilePrefix, ctx.GlobalBool(logSaveFile.Name),
		ctx.GlobalString(workingDirectory.Name))
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		timeLogLifeSpan := time.Second * time.Duration(logFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	log.Info("Starting TAM usage job", "version", appVersion, "pid", os.Getpid(),
		"environment", cfg.Environment, "history file", cfg.HistoryFile, "skip lookup", cfg.SkipLookup)

	handler, err := factory.NewComponentsHandler(cfg, time.Now)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = handler.Run(runCtx)
	if err != nil {
		return err
	}

	log.Info("TAM usage job finished")

	return nil
}

// loadRunConfig merges defaults, the optional TOML file, the command line flags and the optional .env file
// and validates the result. An unknown environment is reported before any history or network access
func loadRunConfig(ctx *cli.Context, programName string) (config.RunConfig, error) {
	var err error
	cfg := config.DefaultRunConfig(programName)

	configPath := ctx.GlobalString(configFile.Name)
	if len(configPath) > 0 {
		cfg, err = config.LoadConfig(configPath, cfg)
		if err != nil {
			return config.RunConfig{}, err
		}
	}

	cfg = applyFlags(ctx, cfg)

	_, err = config.PortForEnvironment(cfg.Environment)
	if err != nil {
		return config.RunConfig{}, err
	}

	envPath := ctx.GlobalString(envFile.Name)
	if len(cfg.AuthToken) == 0 && len(envPath) > 0 {
		envFileContents := map[string]string{
			envAuthToken: "",
		}
		err = commonGo.ReadEnvFile(envPath, envFileContents)
		if err != nil {
			return config.RunConfig{}, err
		}

		cfg.AuthToken = envFileContents[envAuthToken]
	}

	return cfg.Validate()
}
