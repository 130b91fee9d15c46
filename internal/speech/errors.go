package speech

import "errors"

// Terminal failure conditions surfaced to the user. None of them are
// retried internally; callers classify with errors.Is and abort the
// current step.
var (
	// ErrModelDownloadFailed indicates the model archive could not be
	// downloaded or installed.
	ErrModelDownloadFailed = errors.New("failed to download the recognition model")

	// ErrStreamSetupFailed indicates the recognition stream could not
	// be set up.
	ErrStreamSetupFailed = errors.New("failed to set up the recognition stream")

	// ErrUnsupportedAudio indicates audio data that does not match the
	// negotiated format, or audio handed to a session that has none.
	ErrUnsupportedAudio = errors.New("unsupported audio data type")

	// ErrUnsupportedLocale indicates a locale outside the engine's
	// supported set.
	ErrUnsupportedLocale = errors.New("locale is not supported")

	// ErrNoNetwork indicates the model download could not reach the
	// asset host.
	ErrNoNetwork = errors.New("network is unavailable for model download")

	// ErrAudioFileNotFound indicates a transcription input path that
	// does not exist.
	ErrAudioFileNotFound = errors.New("audio file path not found")
)
