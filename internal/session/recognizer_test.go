package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	myvosk "github.com/hekt/dictation/internal/interfaces/vosk"
	"github.com/hekt/dictation/internal/speech"
)

func TestNewRecognizer(t *testing.T) {
	type args struct {
		engine   myvosk.VoskRecognizer
		audioCh  <-chan []byte
		resultCh chan<- []*speech.Result
	}
	validArgs := func() args {
		return args{
			engine:   &myvosk.VoskRecognizerMock{},
			audioCh:  make(chan []byte),
			resultCh: make(chan []*speech.Result),
		}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name:    "success",
			args:    validArgs(),
			wantErr: false,
		},
		{
			name: "engine is nil",
			args: func() args {
				a := validArgs()
				a.engine = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "audio channel is nil",
			args: func() args {
				a := validArgs()
				a.audioCh = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "result channel is nil",
			args: func() args {
				a := validArgs()
				a.resultCh = nil
				return a
			}(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRecognizer(tt.args.engine, tt.args.audioCh, tt.args.resultCh)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRecognizer() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if got == nil {
				t.Errorf("NewRecognizer() = nil, want non-nil")
			}
		})
	}
}

func Test_Recognizer_Start(t *testing.T) {
	t.Run("emits volatile and final results", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		mockWaveformCh := make(chan int)
		mockResultCh := make(chan []byte)
		mockPartialResultCh := make(chan []byte)
		engine := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(buffer []byte) int {
				return <-mockWaveformCh
			},
			ResultFunc: func() []byte {
				return <-mockResultCh
			},
			PartialResultFunc: func() []byte {
				return <-mockPartialResultCh
			},
		}
		audioCh := make(chan []byte)
		resultCh := make(chan []*speech.Result, 3)

		r := &Recognizer{
			engine:   engine,
			audioCh:  audioCh,
			resultCh: resultCh,
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var err error
		go func() {
			defer wg.Done()
			err = r.Start(ctx)
		}()

		audioCh <- []byte("hello")
		mockWaveformCh <- 0
		mockPartialResultCh <- []byte(`{"partial":"hello"}`)
		audioCh <- []byte("world")
		mockWaveformCh <- 1
		mockResultCh <- []byte(`{"text":"hello world","result":[{"word":"hello","start":0.5,"end":1.0},{"word":"world","start":1.0,"end":1.5}]}`)

		for {
			time.Sleep(10 * time.Millisecond)
			if len(resultCh) == 2 {
				break
			}
		}

		cancel()
		wg.Wait()

		if !errors.Is(err, context.Canceled) {
			t.Errorf("Recognizer.Start() error = %v, want %v", err, context.Canceled)
		}
		wantResults := [][]*speech.Result{
			{{Transcript: "hello", IsFinal: false}},
			{{
				Transcript: "hello world",
				IsFinal:    true,
				Start:      500 * time.Millisecond,
				End:        1500 * time.Millisecond,
			}},
		}
		for _, want := range wantResults {
			got := <-resultCh
			if diff := cmp.Diff(got, want); diff != "" {
				t.Errorf("unexpected result (-got +want):\n%s", diff)
			}
		}
	})

	t.Run("flushes and closes result channel when audio channel closes", func(t *testing.T) {
		ctx := context.Background()

		engine := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(buffer []byte) int {
				return 0
			},
			PartialResultFunc: func() []byte {
				return []byte(`{"partial":"goodby"}`)
			},
			FinalResultFunc: func() []byte {
				return []byte(`{"text":"goodbye","result":[{"word":"goodbye","start":0.5,"end":1.5}]}`)
			},
		}
		audioCh := make(chan []byte)
		resultCh := make(chan []*speech.Result, 3)

		r := &Recognizer{
			engine:   engine,
			audioCh:  audioCh,
			resultCh: resultCh,
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var err error
		go func() {
			defer wg.Done()
			err = r.Start(ctx)
		}()

		audioCh <- []byte("goodbye")
		close(audioCh)
		wg.Wait()

		if err != nil {
			t.Errorf("Recognizer.Start() error = %v, wantErr %v", err, false)
		}

		var received [][]*speech.Result
		for results := range resultCh {
			received = append(received, results)
		}
		want := [][]*speech.Result{
			{{Transcript: "goodby", IsFinal: false}},
			{{
				Transcript: "goodbye",
				IsFinal:    true,
				Start:      500 * time.Millisecond,
				End:        1500 * time.Millisecond,
			}},
		}
		if diff := cmp.Diff(received, want); diff != "" {
			t.Errorf("unexpected results (-got +want):\n%s", diff)
		}
		if got, want := len(engine.FinalResultCalls()), 1; got != want {
			t.Errorf("FinalResult called %d times, want %d", got, want)
		}
	})

	t.Run("flush emits nothing for an empty hypothesis", func(t *testing.T) {
		ctx := context.Background()

		engine := &myvosk.VoskRecognizerMock{
			FinalResultFunc: func() []byte {
				return []byte(`{"text":""}`)
			},
		}
		audioCh := make(chan []byte)
		resultCh := make(chan []*speech.Result, 1)

		r := &Recognizer{
			engine:   engine,
			audioCh:  audioCh,
			resultCh: resultCh,
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var err error
		go func() {
			defer wg.Done()
			err = r.Start(ctx)
		}()

		close(audioCh)
		wg.Wait()

		if err != nil {
			t.Errorf("Recognizer.Start() error = %v, wantErr %v", err, false)
		}
		if results, ok := <-resultCh; ok {
			t.Errorf("resultCh received %v, want closed without results", results)
		}
	})

	t.Run("invalid result payload", func(t *testing.T) {
		ctx := context.Background()

		engine := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(buffer []byte) int {
				return 1
			},
			ResultFunc: func() []byte {
				return []byte(`not json`)
			},
		}
		audioCh := make(chan []byte)
		resultCh := make(chan []*speech.Result, 1)

		r := &Recognizer{
			engine:   engine,
			audioCh:  audioCh,
			resultCh: resultCh,
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var err error
		go func() {
			defer wg.Done()
			err = r.Start(ctx)
		}()

		audioCh <- []byte("audio")
		wg.Wait()

		if err == nil {
			t.Errorf("Recognizer.Start() error = %v, wantErr %v", err, true)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		engine := &myvosk.VoskRecognizerMock{}
		audioCh := make(chan []byte)
		resultCh := make(chan []*speech.Result)

		r := &Recognizer{
			engine:   engine,
			audioCh:  audioCh,
			resultCh: resultCh,
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var err error
		go func() {
			defer wg.Done()
			err = r.Start(ctx)
		}()

		cancel()
		wg.Wait()

		if !errors.Is(err, context.Canceled) {
			t.Errorf("Recognizer.Start() error = %v, want %v", err, context.Canceled)
		}
	})
}

func Test_parsePartialResult(t *testing.T) {
	type args struct {
		data []byte
	}
	tests := []struct {
		name    string
		args    args
		want    *speech.Result
		wantErr bool
	}{
		{
			name: "success",
			args: args{data: []byte(`{"partial":"hello"}`)},
			want: &speech.Result{Transcript: "hello", IsFinal: false},
		},
		{
			name: "empty",
			args: args{data: []byte(`{"partial":""}`)},
			want: nil,
		},
		{
			name: "non partial result",
			args: args{data: []byte(`{"text":"hello"}`)},
			want: nil,
		},
		{
			name:    "invalid json",
			args:    args{data: []byte(`{"partial":"hello"`)},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePartialResult(tt.args.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("parsePartialResult() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("parsePartialResult() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func Test_parseResult(t *testing.T) {
	type args struct {
		data []byte
	}
	tests := []struct {
		name    string
		args    args
		want    *speech.Result
		wantErr bool
	}{
		{
			name: "success without word timings",
			args: args{data: []byte(`{"text":"hello"}`)},
			want: &speech.Result{Transcript: "hello", IsFinal: true},
		},
		{
			name: "success with word timings",
			args: args{data: []byte(`{"text":"hello world","result":[{"word":"hello","start":0.5,"end":1.0},{"word":"world","start":1.0,"end":1.5}]}`)},
			want: &speech.Result{
				Transcript: "hello world",
				IsFinal:    true,
				Start:      500 * time.Millisecond,
				End:        1500 * time.Millisecond,
			},
		},
		{
			name: "empty",
			args: args{data: []byte(`{"text":""}`)},
			want: nil,
		},
		{
			name: "partial result",
			args: args{data: []byte(`{"partial":"hello"}`)},
			want: nil,
		},
		{
			name:    "invalid json",
			args:    args{data: []byte(`{"text":"hello"`)},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResult(tt.args.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseResult() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("parseResult() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}
