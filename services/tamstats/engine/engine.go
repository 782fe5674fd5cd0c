package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/history"
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/series"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("engine")

// ErrHistoryFile signals a failure while reading or writing the history file
var ErrHistoryFile = errors.New("history file error")

// ErrFetch signals a failure while fetching the current metric value
var ErrFetch = errors.New("fetch error")

// ErrPublish signals a failure while posting the points to Dashing
var ErrPublish = errors.New("publish error")

// ArgsJobEngine defines the arguments needed to create a new job engine
type ArgsJobEngine struct {
	Store          HistoryStore
	Poller         Poller
	Reporter       Reporter
	NumPoints      int
	Interval       int
	SkipLookup     bool
	FetchTimeout   time.Duration
	PublishTimeout time.Duration
	TimeProvider   func() time.Time
}

// jobEngine runs one collect-and-publish cycle
type jobEngine struct {
	store          HistoryStore
	poller         Poller
	reporter       Reporter
	numPoints      int
	interval       int
	skipLookup     bool
	fetchTimeout   time.Duration
	publishTimeout time.Duration
	timeProvider   func() time.Time
	state          jobState
}

// NewJobEngine creates a new engine instance
func NewJobEngine(args ArgsJobEngine) (*jobEngine, error) {
	if check.IfNil(args.Store) {
		return nil, errors.New("nil history store")
	}
	if check.IfNil(args.Poller) {
		return nil, errors.New("nil poller")
	}
	if check.IfNil(args.Reporter) {
		return nil, errors.New("nil reporter")
	}
	if args.NumPoints < 1 {
		return nil, fmt.Errorf("invalid number of points %d", args.NumPoints)
	}
	if args.Interval < 1 {
		return nil, fmt.Errorf("invalid skip interval %d", args.Interval)
	}
	if args.TimeProvider == nil {
		return nil, errors.New("nil time provider")
	}

	return &jobEngine{
		store:          args.Store,
		poller:         args.Poller,
		reporter:       args.Reporter,
		numPoints:      args.NumPoints,
		interval:       args.Interval,
		skipLookup:     args.SkipLookup,
		fetchTimeout:   args.FetchTimeout,
		publishTimeout: args.PublishTimeout,
		timeProvider:   args.TimeProvider,
		state:          stateInit,
	}, nil
}

// Process runs the job once: ensure history, fetch and append (unless skipped), load the tail, publish
func (e *jobEngine) Process(ctx context.Context) error {
	e.setState(stateInit)

	err := e.store.EnsureFile()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryFile, err)
	}
	e.setState(stateFileReady)

	if e.skipLookup {
		log.Info("skipping metric lookup, graphing historical values only")
		e.setState(stateSkippedFetch)
	} else {
		err = e.fetchAndRecord(ctx)
		if err != nil {
			return err
		}
		e.setState(stateFetched)
	}

	values, err := e.store.LoadTail(e.numPoints, e.interval)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryFile, err)
	}
	e.setState(stateLoaded)

	points := series.BuildPoints(values)
	e.setState(stateSerialized)

	reportCtx, cancelReport := e.withTimeout(ctx, e.publishTimeout)
	defer cancelReport()

	err = e.reporter.Report(reportCtx, points)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublish, err)
	}
	e.setState(statePublished)

	e.setState(stateDone)

	return nil
}

func (e *jobEngine) fetchAndRecord(ctx context.Context) error {
	fetchCtx, cancelFetch := e.withTimeout(ctx, e.fetchTimeout)
	defer cancelFetch()

	value, err := e.poller.Fetch(fetchCtx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	sample := history.NewSample(e.timeProvider(), value)
	err = e.store.Append(sample)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryFile, err)
	}

	log.Info("recorded metric value", "timestamp", sample.Timestamp, "value", sample.Value)

	return nil
}

func (e *jobEngine) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

func (e *jobEngine) setState(state jobState) {
	log.Trace("job state", "from", e.state, "to", state)
	e.state = state
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *jobEngine) IsInterfaceNil() bool {
	return e == nil
}
