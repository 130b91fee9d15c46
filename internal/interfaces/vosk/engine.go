package vosk

import (
	"fmt"
	"sync"

	api "github.com/alphacep/vosk-api/go"
)

// OpenFunc opens an engine for the model at modelPath, configured for
// audio at sampleRate.
type OpenFunc func(modelPath string, sampleRate float64) (VoskRecognizer, error)

var _ OpenFunc = Open

var _ VoskRecognizer = (*engine)(nil)

// engine ties the vosk-api recognizer to the model it was created
// from, so Close can free both in the right order.
type engine struct {
	model      *api.VoskModel
	recognizer *api.VoskRecognizer
}

var silenceLogOnce sync.Once

// Open loads the model at modelPath and creates a recognizer for
// audio at sampleRate. Word-level timestamps are enabled so committed
// results carry time ranges.
func Open(modelPath string, sampleRate float64) (VoskRecognizer, error) {
	// The vosk runtime logs to stderr by default and would corrupt
	// the terminal view.
	silenceLogOnce.Do(func() { api.SetLogLevel(-1) })

	model, err := api.NewModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %q: %w", modelPath, err)
	}

	recognizer, err := api.NewRecognizer(model, sampleRate)
	if err != nil {
		model.Free()
		return nil, fmt.Errorf("failed to create recognizer: %w", err)
	}
	recognizer.SetWords(1)

	return &engine{
		model:      model,
		recognizer: recognizer,
	}, nil
}

func (e *engine) AcceptWaveform(buffer []byte) int {
	return e.recognizer.AcceptWaveform(buffer)
}

func (e *engine) PartialResult() []byte {
	return e.recognizer.PartialResult()
}

func (e *engine) Result() []byte {
	return e.recognizer.Result()
}

func (e *engine) FinalResult() []byte {
	return e.recognizer.FinalResult()
}

func (e *engine) Close() {
	e.recognizer.Free()
	e.model.Free()
}
