package port

import "context"

// Streamer produces a tagged translation of text as a stream of raw chunks.
type Streamer interface {
	// Stream calls emit with each chunk in order and returns when the
	// response ends. An error from emit stops the stream and is returned.
	Stream(ctx context.Context, text string, emit func(chunk string) error) error

	// ModelName returns the name of the model.
	ModelName() string
}
