package engine

import (
	"context"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
)

// HistoryStore defines the append-only history of the recorded samples
type HistoryStore interface {
	// EnsureFile creates the history with its header if missing. An existing history is never rewritten
	EnsureFile() error

	// Append adds the sample at the end of the history
	Append(sample common.Sample) error

	// LoadTail returns the last numPoints values, keeping only every interval-th one
	LoadTail(numPoints int, interval int) ([]string, error)

	IsInterfaceNil() bool
}

// Poller defines the interface for fetching the current metric value
type Poller interface {
	// Fetch performs one HTTP GET against the metric endpoint and extracts the value
	Fetch(ctx context.Context) (string, error)

	IsInterfaceNil() bool
}

// Reporter defines the interface for pushing the points to the Dashing widget
type Reporter interface {
	// Report sends the points to the widget. Failures are returned, there is no retry
	Report(ctx context.Context, points common.PointSeries) error

	IsInterfaceNil() bool
}
