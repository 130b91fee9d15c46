package session

import (
	"context"

	"github.com/hekt/dictation/internal/speech"
)

//go:generate moq -rm -out sink_mock.go . Sink

// Sink receives transcript updates for delivery outside the view,
// such as persistence or a message bus. Sink failures are logged and
// do not stop the session.
type Sink interface {
	Partial(ctx context.Context, text string) error
	Final(ctx context.Context, result *speech.Result) error
}
