package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/elex/internal/config"
	"github.com/sandevgo/elex/internal/core"
	"github.com/sandevgo/elex/internal/providers/ap"
	"github.com/sandevgo/elex/internal/service/guard"
	"github.com/sandevgo/elex/pkg/log"
	"github.com/spf13/cobra"
)

// exit is swapped in tests so failure paths can be observed.
var exit = os.Exit

// runGuarded builds the per-invocation guard context and runs h with it.
func runGuarded(cmd *cobra.Command, args []string, h guard.Handler) error {
	envErr := initEnv(config.GetRuntimePath())

	ctx, flushLog := setupLogger(cmd.Context())
	defer flushLog()

	logger := log.FromCtx(ctx)
	if envErr != nil {
		logger.Warn().Err(envErr).Msg("failed to load .env file")
	}

	cc := &guard.Context{
		Program:  core.ElexName,
		Command:  cmd.Name(),
		DataFile: dataFile,
		DateArgs: args,
		Logger:   log.NewCommandLoggerFromCtx(ctx),
		Exit: func(code int) {
			flushLog()
			exit(code)
		},
	}

	logger.Debug().Str("command", cc.Command).Str("data_file", cc.DataFile).Strs("args", args).Msg("running command")
	return h(ctx, cc)
}

func requestOptions(ctx context.Context) ap.Options {
	appCfg := config.NewAppConfig(ctx)
	return ap.Options{
		Test:         testResults || appCfg.TestResults,
		NationalOnly: nationalOnly || appCfg.NationalOnly,
		RaceIDs:      raceIDs,
	}
}

// loadElection reads the data file when one was given and asks the AP API otherwise.
func loadElection(ctx context.Context, cc *guard.Context) (*core.Election, error) {
	opts := requestOptions(ctx)

	if cc.DataFile != "" {
		e, err := ap.LoadFile(cc.DataFile)
		if err != nil {
			return nil, err
		}
		e.Races = opts.Filter(e.Races)
		return e, nil
	}

	client, err := newAPClient()
	if err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Time("date", cc.ElectionDate).Bool("test", opts.Test).Msg("fetching election")
	return client.Election(ctx, cc.ElectionDate, opts)
}

func newAPClient() (*ap.Client, error) {
	cfg, err := config.NewAPConfig()
	if err != nil {
		return nil, err
	}
	return ap.NewClient(cfg), nil
}

func initEnv(runtimePath string) error {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return godotenv.Load(envFile)
}
