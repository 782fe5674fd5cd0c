package testsCommon

import (
	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
)

// HistoryStoreStub -
type HistoryStoreStub struct {
	EnsureFileHandler func() error
	AppendHandler     func(sample common.Sample) error
	LoadTailHandler   func(numPoints int, interval int) ([]string, error)
}

// EnsureFile -
func (stub *HistoryStoreStub) EnsureFile() error {
	if stub.EnsureFileHandler != nil {
		return stub.EnsureFileHandler()
	}

	return nil
}

// Append -
func (stub *HistoryStoreStub) Append(sample common.Sample) error {
	if stub.AppendHandler != nil {
		return stub.AppendHandler(sample)
	}

	return nil
}

// LoadTail -
func (stub *HistoryStoreStub) LoadTail(numPoints int, interval int) ([]string, error) {
	if stub.LoadTailHandler != nil {
		return stub.LoadTailHandler(numPoints, interval)
	}

	return make([]string, 0), nil
}

// IsInterfaceNil -
func (stub *HistoryStoreStub) IsInterfaceNil() bool {
	return stub == nil
}
