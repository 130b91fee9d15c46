// Package vosk wraps the vosk-api bindings behind a small interface so
// the engine can be mocked in tests.
package vosk

//go:generate moq -rm -out recognizer_mock.go . VoskRecognizer
type VoskRecognizer interface {
	AcceptWaveform(buffer []byte) int
	PartialResult() []byte
	Result() []byte
	FinalResult() []byte
	Close()
}
