package testsCommon

import (
	"context"
)

// PollerStub -
type PollerStub struct {
	FetchHandler func(ctx context.Context) (string, error)
}

// Fetch -
func (stub *PollerStub) Fetch(ctx context.Context) (string, error) {
	if stub.FetchHandler != nil {
		return stub.FetchHandler(ctx)
	}

	return "", nil
}

// IsInterfaceNil -
func (stub *PollerStub) IsInterfaceNil() bool {
	return stub == nil
}
