package testsCommon

import (
	"context"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
)

// ReporterStub -
type ReporterStub struct {
	ReportHandler func(ctx context.Context, points common.PointSeries) error
}

// Report -
func (stub *ReporterStub) Report(ctx context.Context, points common.PointSeries) error {
	if stub.ReportHandler != nil {
		return stub.ReportHandler(ctx, points)
	}

	return nil
}

// IsInterfaceNil -
func (stub *ReporterStub) IsInterfaceNil() bool {
	return stub == nil
}
