package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/autotyper/internal/cli"
	"github.com/xonecas/autotyper/internal/config"
	"github.com/xonecas/autotyper/internal/constants"
	"github.com/xonecas/autotyper/internal/expand"
	"github.com/xonecas/autotyper/internal/styles"
	"github.com/xonecas/autotyper/internal/typer"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	flags := cli.ParseFlags()

	if flags.ShowVersion {
		cli.PrintVersion(Version)
		return nil
	}
	if flags.ShowHelp {
		cli.PrintHelp(Version)
		return nil
	}

	setupLogging(flags.Debug)

	// Load definitions
	path, err := config.Resolve(flags.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	table, err := expand.NewTable(cfg.Sequences, cfg.Combinations)
	if err != nil {
		return fmt.Errorf("invalid definitions in %s: %w", path, err)
	}
	exp := expand.New(table, nil)

	// Handle listing commands
	if flags.List {
		cli.ListCmd(os.Stdout, table)
		return nil
	}
	if flags.ListFull {
		cli.ListFullCmd(os.Stdout, table, exp)
		return nil
	}

	if len(flags.Tokens) == 0 {
		cli.PrintHelp(Version)
		return nil
	}

	// Delay precedence: flag, then config, then built-in default.
	delay := constants.DefaultDelay
	if cfg.Delay != nil {
		delay = time.Duration(*cfg.Delay) * time.Millisecond
	}
	if flags.Delay >= 0 {
		delay = time.Duration(flags.Delay) * time.Millisecond
	}

	typerName := flags.Typer
	if flags.DryRun {
		typerName = "print"
	}
	typ, err := typer.New(typerName, os.Stdout)
	if err != nil {
		return err
	}

	log.Info().
		Str("version", Version).
		Str("config", path).
		Str("typer", typerName).
		Dur("delay", delay).
		Int("tokens", len(flags.Tokens)).
		Msg("Starting AutoTyper")

	return cli.Run(ctx, exp, typ, flags.Tokens, flags.Args, delay)
}

func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
