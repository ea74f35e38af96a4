// Command kwokmatch runs the kwok matching engine either as a one-shot CLI
// (match) or as an HTTP service (serve).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlath/internal/config"
	"github.com/katalvlaran/lvlath/internal/log"
	"github.com/katalvlaran/lvlath/internal/service"
	"github.com/katalvlaran/lvlath/internal/store"
	"github.com/katalvlaran/lvlath/kwok"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "match":
		if err := runMatch(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "kwokmatch match:", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "kwokmatch serve:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: kwokmatch <match|serve> [flags]")
}

// matchInput is the JSON shape read from a file or stdin for the match
// subcommand.
type matchInput struct {
	LSize int           `json:"l_size"`
	RSize int           `json:"r_size"`
	Adj   [][]kwok.Edge `json:"adj"`
}

func runMatch(args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	file := fs.String("in", "", "path to a JSON adjacency file (default: stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("open %s: %w", *file, err)
		}
		defer f.Close()
		r = f
	}

	var in matchInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	m, err := kwok.Solve(in.LSize, in.RSize, in.Adj)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	var st store.Store
	if cfg.DatabaseDSN != "" {
		ctx := context.Background()
		pg, err := store.Connect(ctx, cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pg.Close()
		if err := pg.InitSchema(ctx); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
		st = pg
	} else {
		st = store.NewMemStore()
	}

	srv := service.New(st, logger, cfg.AllowedOrigins)
	logger.Infow("listening", "addr", cfg.Addr)
	return srv.Engine().Run(cfg.Addr)
}
