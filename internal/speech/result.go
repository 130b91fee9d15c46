package speech

import "time"

// Result is a single recognition hypothesis from the engine.
// A volatile result carries the engine's current best guess for the
// unfinished utterance and is replaced by the next one. A final result
// is committed and never revised.
type Result struct {
	Transcript string
	IsFinal    bool
	// Start and End delimit the utterance within the audio timeline.
	// Zero for volatile results.
	Start time.Duration
	End   time.Duration
}
