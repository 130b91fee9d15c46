package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hekt/dictation/internal/interfaces/vosk"
	"github.com/hekt/dictation/internal/speech"
)

//go:generate moq -rm -out recognizer_mock.go . RecognizerInterface
type RecognizerInterface interface {
	Start(ctx context.Context) error
}

var _ RecognizerInterface = (*Recognizer)(nil)

// Recognizer feeds audio to the engine and emits recognition results.
// A zero return from AcceptWaveform means the utterance is still open
// and the current partial is emitted as volatile; a non-zero return
// commits the utterance. When the audio channel closes the engine is
// asked to flush and the remaining hypothesis is emitted as final,
// then the result channel is closed.
type Recognizer struct {
	engine   vosk.VoskRecognizer
	audioCh  <-chan []byte
	resultCh chan<- []*speech.Result
}

func NewRecognizer(
	engine vosk.VoskRecognizer,
	audioCh <-chan []byte,
	resultCh chan<- []*speech.Result,
) (*Recognizer, error) {
	if engine == nil {
		return nil, errors.New("engine must be specified")
	}
	if audioCh == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}

	return &Recognizer{
		engine:   engine,
		audioCh:  audioCh,
		resultCh: resultCh,
	}, nil
}

func (r *Recognizer) Start(ctx context.Context) error {
	defer close(r.resultCh)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case audio, ok := <-r.audioCh:
			if !ok {
				return r.flush(ctx)
			}

			var results []*speech.Result
			if r.engine.AcceptWaveform(audio) == 0 {
				result, err := parsePartialResult(r.engine.PartialResult())
				if err != nil {
					return fmt.Errorf("failed to parse partial result: %w", err)
				}
				if result == nil {
					continue
				}
				results = []*speech.Result{result}
			} else {
				result, err := parseResult(r.engine.Result())
				if err != nil {
					return fmt.Errorf("failed to parse result: %w", err)
				}
				if result == nil {
					continue
				}
				results = []*speech.Result{result}
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case r.resultCh <- results:
			}
		}
	}
}

// flush asks the engine for the final hypothesis of the still-open
// utterance and emits it before the result channel closes.
func (r *Recognizer) flush(ctx context.Context) error {
	slog.Debug("Recognizer: flush remaining audio")

	result, err := parseResult(r.engine.FinalResult())
	if err != nil {
		return fmt.Errorf("failed to parse final result: %w", err)
	}
	if result == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r.resultCh <- []*speech.Result{result}:
		return nil
	}
}

func parsePartialResult(data []byte) (*speech.Result, error) {
	var payload struct {
		Partial string `json:"partial"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.Partial == "" {
		return nil, nil
	}

	return &speech.Result{
		Transcript: payload.Partial,
		IsFinal:    false,
	}, nil
}

func parseResult(data []byte) (*speech.Result, error) {
	var payload struct {
		Text   string `json:"text"`
		Result []struct {
			Start float64 `json:"start"`
			End   float64 `json:"end"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.Text == "" {
		return nil, nil
	}

	result := &speech.Result{
		Transcript: payload.Text,
		IsFinal:    true,
	}
	if len(payload.Result) > 0 {
		result.Start = time.Duration(payload.Result[0].Start * float64(time.Second))
		result.End = time.Duration(payload.Result[len(payload.Result)-1].End * float64(time.Second))
	}

	return result, nil
}
