// main.go
//
// Entry point for the interactive Tower of Hanoi session.
// Responsibilities:
//   - Load .env / environment configuration (disk count, peg names, journal).
//   - Configure zerolog from LOG_LEVEL.
//   - Build the engine: the first peg loaded N..1, the rest empty.
//   - Run the session over stdin/stdout and log a summary on exit.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hanoi/internal/game"
	"github.com/robalobadob/hanoi/internal/history"
	"github.com/robalobadob/hanoi/internal/peg"
	"github.com/robalobadob/hanoi/internal/render"
	"github.com/robalobadob/hanoi/internal/session"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	disks := getEnvInt("HANOI_DISKS", 9)
	if disks < 1 {
		log.Fatal().Int("disks", disks).Msg("HANOI_DISKS must be at least 1")
	}
	names := strings.Split(getEnv("HANOI_PEGS", "a,b,c"), ",")

	engine, err := buildEngine(names, disks)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up pegs")
	}

	var recorder history.Recorder = history.NewMemory()
	if dsn := os.Getenv("HANOI_DB"); dsn != "" {
		recorder, err = history.NewSQLite(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("db", dsn).Msg("failed to open move journal")
		}
		log.Info().Str("db", dsn).Msg("journaling moves")
	}
	defer func() { _ = recorder.Close() }()

	sess := session.New(engine, os.Stdin, render.New(os.Stdout), recorder)
	if err := sess.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("session exited")
	}
	log.Info().Int("moves", sess.Moves()).Int("undos", sess.Undos()).Msg("session ended")
}

// buildEngine creates one peg per name; the first peg starts with disks
// sized disks..1, largest at the bottom.
func buildEngine(names []string, disks int) (*game.Engine[session.Disk], error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no peg names configured")
	}
	engine := game.New[session.Disk]()

	err := engine.CreateWith(names[0], func(p *peg.Peg[session.Disk]) error {
		for i := disks; i >= 1; i-- {
			if !p.Place(session.Disk(i)) {
				return fmt.Errorf("disk %d does not fit", i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, name := range names[1:] {
		if err := engine.Create(name); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric env value")
		return def
	}
	return n
}
