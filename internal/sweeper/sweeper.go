package sweeper

import (
	"context"
)

// Sweeper is a periodic maintenance loop run by the sweeper binary
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs cycles on the configured interval until ctx is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop ends the loop after the in-flight cycle and waits for it, bounded by ctx
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs and sweep markers
	Name() string
}
