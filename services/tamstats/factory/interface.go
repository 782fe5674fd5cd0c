package factory

import "context"

// Engine defines the job's operations
type Engine interface {
	Process(ctx context.Context) error
	IsInterfaceNil() bool
}
