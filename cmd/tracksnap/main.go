// Command tracksnap records every tile the multi-dimension coaster can paint
// into a YAML snapshot, or checks the painter against a recorded one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/snapshot"
	"coasterpaint/internal/track"
)

func main() {
	configFile := flag.String("config", "config.yaml", "configuration file")
	out := flag.String("out", "", "snapshot file (default: snapshot.output from the config, - for stdout or, with -verify, stdin)")
	verify := flag.Bool("verify", false, "compare against the snapshot file instead of writing it")
	workers := flag.Int("workers", -1, "paint workers (default: snapshot.workers from the config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		*out = cfg.Snapshot.Output
	}
	if *workers < 0 {
		*workers = cfg.Snapshot.Workers
	}

	styles := track.NewStyleRegistry()
	if err := styles.LoadStyleFile(cfg.Paint.StyleFile); err != nil {
		log.Fatal(err)
	}
	r, err := ride.NewFromConfig(0, styles.Name(), cfg.Paint)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	got, err := snapshot.Generate(ctx, styles, r, snapshot.Options{
		Workers:  *workers,
		Height:   cfg.GetBaseHeight(),
		Position: paint.CoordsXY{X: cfg.Paint.MapX, Y: cfg.Paint.MapY},
	})
	if err != nil {
		log.Fatal(err)
	}

	if *verify {
		want, err := snapshot.Load(*out, os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		if err := snapshot.Diff(want, got); err != nil {
			if errors.Is(err, snapshot.ErrMismatch) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			log.Fatal(err)
		}
		log.Printf("%s matches %d cases", *out, len(want.Cases))
		return
	}

	if *out == "-" {
		if err := snapshot.Encode(os.Stdout, got); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := snapshot.WriteFile(*out, got); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d cases to %s", len(got.Cases), *out)
}
