package factory

import (
	"context"
	"time"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/config"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/engine"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/history"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/poller"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/reporter"
)

type componentsHandler struct {
	store    engine.HistoryStore
	poller   engine.Poller
	reporter engine.Reporter
	engine   Engine
}

// NewComponentsHandler creates a new components handler out of a validated run configuration
func NewComponentsHandler(cfg config.RunConfig, timeProvider func() time.Time) (*componentsHandler, error) {
	store, err := history.NewFileStore(cfg.HistoryFile, cfg.Header)
	if err != nil {
		return nil, err
	}

	poll, err := poller.NewHTTPPoller(poller.ArgsHTTPPoller{
		Endpoint:  cfg.HTTPEndpoint,
		LoginKey:  cfg.LoginKey,
		Timeout:   time.Duration(cfg.FetchTimeoutInSeconds) * time.Second,
		Extractor: createExtractor(cfg),
	})
	if err != nil {
		return nil, err
	}

	rep, err := reporter.NewHTTPReporter(reporter.ArgsHTTPReporter{
		Host:      cfg.DashingHost,
		Port:      cfg.DashingPort,
		Widget:    cfg.Widget,
		AuthToken: cfg.AuthToken,
		Timeout:   time.Duration(cfg.PublishTimeoutInSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	eng, err := engine.NewJobEngine(engine.ArgsJobEngine{
		Store:          store,
		Poller:         poll,
		Reporter:       rep,
		NumPoints:      cfg.NumPoints,
		Interval:       cfg.Interval,
		SkipLookup:     cfg.SkipLookup,
		FetchTimeout:   time.Duration(cfg.FetchTimeoutInSeconds) * time.Second,
		PublishTimeout: time.Duration(cfg.PublishTimeoutInSeconds) * time.Second,
		TimeProvider:   timeProvider,
	})
	if err != nil {
		return nil, err
	}

	return &componentsHandler{
		store:    store,
		poller:   poll,
		reporter: rep,
		engine:   eng,
	}, nil
}

func createExtractor(cfg config.RunConfig) poller.Extractor {
	if len(cfg.ValuePath) > 0 {
		return poller.NewJSONPathExtractor(cfg.ValuePath)
	}

	return poller.NewFieldExtractor(cfg.FieldIndex)
}

// GetHistoryStore returns the history store component
func (ch *componentsHandler) GetHistoryStore() engine.HistoryStore {
	return ch.store
}

// GetPoller returns the poller component
func (ch *componentsHandler) GetPoller() engine.Poller {
	return ch.poller
}

// GetReporter returns the reporter component
func (ch *componentsHandler) GetReporter() engine.Reporter {
	return ch.reporter
}

// GetEngine returns the engine component
func (ch *componentsHandler) GetEngine() Engine {
	return ch.engine
}

// Run executes the job once
func (ch *componentsHandler) Run(ctx context.Context) error {
	return ch.engine.Process(ctx)
}
