package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hekt/dictation/internal/actions/manage/history"
	"github.com/hekt/dictation/internal/actions/manage/model"
	"github.com/hekt/dictation/internal/actions/transcribe"
	"github.com/hekt/dictation/internal/config"
	"github.com/hekt/dictation/internal/logger"
)

func NewTranscribeCommand() *cli.Command {
	return &cli.Command{
		Name:  "transcribe",
		Usage: "transcribe speech from stdin or a WAV file",
		Flags: []cli.Flag{
			configFlag,
			localeFlag,
			debugFlag,
			modelDirFlag,
			inputFlag,
			outputFlag,
			sampleRateFlag,
			channelsFlag,
			bufferSizeFlag,
			inactiveTimeoutFlag,
			storeFlag,
			publishFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %w", err)
			}
			if cCtx.Bool(debugFlag.Name) {
				level = slog.LevelDebug
			}
			if err := setLogger(level, cfg.Log.Dir); err != nil {
				return fmt.Errorf("failed to set logger: %w", err)
			}

			options := make([]transcribe.Option, 0, 2)
			if cCtx.IsSet(inputFlag.Name) {
				options = append(options, transcribe.WithInputFilePath(cCtx.String(inputFlag.Name)))
			}
			if cCtx.IsSet(outputFlag.Name) {
				options = append(options, transcribe.WithOutputFilePath(cCtx.String(outputFlag.Name)))
			}

			return transcribe.Run(
				cCtx.Context,
				transcribe.Args{
					Config: cfg,
				},
				options...,
			)
		},
	}
}

func NewModelDownloadCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "model-download",
		Usage:    "download the recognition model for a locale",
		Flags: []cli.Flag{
			configFlag,
			requiredLocaleFlag,
			modelDirFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			args := model.DownloadArgs{
				Dir:    cfg.Models.Dir,
				Locale: cCtx.String(localeFlag.Name),
			}
			if err := model.Download(cCtx.Context, args); err != nil {
				return fmt.Errorf("failed to download model: %w", err)
			}

			return nil
		},
	}
}

func NewModelListCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "model-list",
		Usage:    "list supported locales and their models",
		Flags: []cli.Flag{
			configFlag,
			modelDirFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			args := model.ListArgs{
				Dir: cfg.Models.Dir,
			}
			if err := model.List(cCtx.Context, args); err != nil {
				return fmt.Errorf("failed to list models: %w", err)
			}

			return nil
		},
	}
}

func NewModelRemoveCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "model-remove",
		Usage:    "remove the installed model for a locale",
		Flags: []cli.Flag{
			configFlag,
			requiredLocaleFlag,
			modelDirFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			args := model.RemoveArgs{
				Dir:    cfg.Models.Dir,
				Locale: cCtx.String(localeFlag.Name),
			}
			if err := model.Remove(cCtx.Context, args); err != nil {
				return fmt.Errorf("failed to remove model: %w", err)
			}

			return nil
		},
	}
}

func NewModelReleaseCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "model-release",
		Usage:    "remove all installed models",
		Flags: []cli.Flag{
			configFlag,
			modelDirFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			args := model.ReleaseArgs{
				Dir: cfg.Models.Dir,
			}
			if err := model.Release(cCtx.Context, args); err != nil {
				return fmt.Errorf("failed to release models: %w", err)
			}

			return nil
		},
	}
}

func NewHistoryListCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "history-list",
		Usage:    "list recorded sessions",
		Flags: []cli.Flag{
			configFlag,
			dbFlag,
			limitFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			args := history.ListArgs{
				Path:  cfg.Store.Path,
				Limit: cCtx.Int(limitFlag.Name),
			}
			if err := history.List(cCtx.Context, args); err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}

			return nil
		},
	}
}

func NewHistoryShowCommand() *cli.Command {
	return &cli.Command{
		Category: "manage",
		Name:     "history-show",
		Usage:    "show the segments of a recorded session",
		Flags: []cli.Flag{
			configFlag,
			dbFlag,
			requiredSessionIDFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}

			args := history.ShowArgs{
				Path:      cfg.Store.Path,
				SessionID: cCtx.String(sessionIDFlag.Name),
			}
			if err := history.Show(cCtx.Context, args); err != nil {
				return fmt.Errorf("failed to show session: %w", err)
			}

			return nil
		},
	}
}

// loadConfig loads the config file named by --config (or the defaults
// when none is given) and overlays the flags that alias config keys.
// Values that downstream constructors validate are passed through
// as-is so they fail with the proper error kinds.
func loadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(cCtx.String(configFlag.Name))
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cCtx.IsSet(localeFlag.Name) {
		cfg.Locale = cCtx.String(localeFlag.Name)
	}
	if cCtx.IsSet(modelDirFlag.Name) {
		cfg.Models.Dir = cCtx.String(modelDirFlag.Name)
	}
	if cCtx.IsSet(sampleRateFlag.Name) {
		cfg.Audio.SampleRate = cCtx.Int(sampleRateFlag.Name)
	}
	if cCtx.IsSet(channelsFlag.Name) {
		cfg.Audio.Channels = cCtx.Int(channelsFlag.Name)
	}
	if cCtx.IsSet(bufferSizeFlag.Name) {
		cfg.Audio.BufferSize = cCtx.Int(bufferSizeFlag.Name)
	}
	if cCtx.IsSet(inactiveTimeoutFlag.Name) {
		cfg.Session.InactiveTimeoutMS = int(cCtx.Duration(inactiveTimeoutFlag.Name).Milliseconds())
	}
	if cCtx.IsSet(storeFlag.Name) {
		cfg.Store.Enabled = cCtx.Bool(storeFlag.Name)
	}
	if cCtx.IsSet(dbFlag.Name) {
		cfg.Store.Path = cCtx.String(dbFlag.Name)
	}
	if cCtx.IsSet(publishFlag.Name) {
		cfg.Publish.Enabled = cCtx.Bool(publishFlag.Name)
	}

	return cfg, nil
}

func setLogger(level slog.Level, dir string) error {
	if err := os.MkdirAll(dir, os.FileMode(0o755)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logger, err := logger.NewFileLogger(
		filepath.Join(dir, fmt.Sprintf("log-%d.log", time.Now().Unix())),
		level,
	)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(logger)
	return nil
}
