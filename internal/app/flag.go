package app

import "github.com/urfave/cli/v2"

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Config file path",
}

var localeFlag = &cli.StringFlag{
	Name:  "locale",
	Usage: "Locale to transcribe such as en-US",
}

var requiredLocaleFlag = &cli.StringFlag{
	Name:     localeFlag.Name,
	Usage:    localeFlag.Usage,
	Required: true,
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log",
	Value: false,
}

var modelDirFlag = &cli.StringFlag{
	Name:  "modeldir",
	Usage: "Directory where models are installed",
}

//
// Transcribe flags
//

var inputFlag = &cli.StringFlag{
	Name:  "input",
	Usage: "Input WAV file path read instead of stdin",
}

var outputFlag = &cli.StringFlag{
	Name:  "output",
	Usage: "Output file path",
}

var sampleRateFlag = &cli.IntFlag{
	Name:  "samplerate",
	Usage: "Sample rate of the stdin audio in Hz",
}

var channelsFlag = &cli.IntFlag{
	Name:  "channels",
	Usage: "Channel count of the stdin audio",
}

var bufferSizeFlag = &cli.IntFlag{
	Name:  "buffersize",
	Usage: "Buffer size bytes",
}

var inactiveTimeoutFlag = &cli.DurationFlag{
	Name:  "inactive-timeout",
	Usage: "Stop the session after this duration without results",
}

var storeFlag = &cli.BoolFlag{
	Name:  "store",
	Usage: "Record the session to the history database",
}

var publishFlag = &cli.BoolFlag{
	Name:  "publish",
	Usage: "Publish transcript events to NATS",
}

//
// History flags
//

var dbFlag = &cli.StringFlag{
	Name:  "db",
	Usage: "History database path",
}

var limitFlag = &cli.IntFlag{
	Name:  "limit",
	Usage: "Maximum number of sessions to list",
}

var sessionIDFlag = &cli.StringFlag{
	Name:  "session",
	Usage: "Session ID",
}

var requiredSessionIDFlag = &cli.StringFlag{
	Name:     sessionIDFlag.Name,
	Usage:    sessionIDFlag.Usage,
	Required: true,
}
