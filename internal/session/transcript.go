// Package session orchestrates one dictation run: it feeds converted
// audio to the recognition engine through an unbounded queue and
// applies the engine's results to the live transcript.
package session

import "sync"

// Transcript holds the finalized and volatile transcript buffers.
// Finalized text is append-only and never rewritten; the volatile
// buffer is the engine's current guess for the unfinished utterance
// and is replaced on every partial update. A single pipeline worker
// mutates the buffers; the mutex makes reads from other goroutines
// safe.
type Transcript struct {
	mu        sync.RWMutex
	finalized []string
	volatile  string
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// ReplaceVolatile swaps the volatile buffer for text.
func (t *Transcript) ReplaceVolatile(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.volatile = text
}

// AppendFinal commits text and clears the volatile buffer, which the
// committed text supersedes.
func (t *Transcript) AppendFinal(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finalized = append(t.finalized, text)
	t.volatile = ""
}

// Snapshot returns a consistent copy of both buffers.
func (t *Transcript) Snapshot() ([]string, string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	finalized := make([]string, len(t.finalized))
	copy(finalized, t.finalized)
	return finalized, t.volatile
}
