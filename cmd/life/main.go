package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"life-table/internal/app"
	"life-table/internal/seed"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()
	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			log.Fatal(err)
		}
		// Flags given on the command line win over the file.
		flag.Parse()
	}
	if flag.NArg() > 0 {
		cfg.SeedFile = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.Run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [seed-file]\n\n", os.Args[0])
	fmt.Fprintln(out, "Runs Conway's Game of Life. Keys: space pauses, n steps once, q or Esc quits.")
	fmt.Fprintf(out, "Built-in patterns: %s\n\n", strings.Join(seed.Names(), ", "))
	flag.PrintDefaults()
}
