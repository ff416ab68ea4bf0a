package main

import (
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/montyhall/internal/config"
	"github.com/robalobadob/montyhall/internal/random"
	"github.com/robalobadob/montyhall/internal/report"
	"github.com/robalobadob/montyhall/internal/sim"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	setupLogging(cfg)

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			log.Fatal().Err(err).Msg("failed to draw seed")
		}
	}

	logger := log.With().Str("run_id", uuid.NewString()).Logger()
	logger.Info().
		Int64("seed", seed).
		Int("trials", cfg.Trials).
		Ints("doors", cfg.DoorCounts).
		Msg("starting simulation")

	s := sim.New(
		random.Stream(seed, random.StreamHost),
		random.Stream(seed, random.StreamCandidate),
		logger,
	)
	results, err := s.RunAll(cfg.DoorCounts, cfg.Trials)
	if err != nil {
		if sim.IsFatal(err) {
			logger.Fatal().Err(err).Msg("simulation is unsound")
		}
		logger.Fatal().Err(err).Msg("simulation failed")
	}

	if err := report.Write(os.Stdout, results); err != nil {
		logger.Fatal().Err(err).Msg("failed to print results")
	}
	logger.Info().Msg("simulation finished")
}

// setupLogging applies the configured level and output format to the global logger.
// The level has already been checked by Validate.
func setupLogging(cfg *config.Config) {
	if lvl, _ := zerolog.ParseLevel(cfg.LogLevel); lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
