package app

import (
	"github.com/urfave/cli/v2"
)

func New() *cli.App {
	return &cli.App{
		Commands: []*cli.Command{
			NewTranscribeCommand(),
			NewModelDownloadCommand(),
			NewModelListCommand(),
			NewModelRemoveCommand(),
			NewModelReleaseCommand(),
			NewHistoryListCommand(),
			NewHistoryShowCommand(),
		},
	}
}
