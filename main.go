package main

import (
	"flag"
	"os"

	"gamearena/config"
	"gamearena/engine"
	"gamearena/game"
	"gamearena/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var gameNames = []string{"count", "narrow", "bandit", "rps", "tictactoe"}

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Str("level", cfg.LogLevel).Msg("unknown log level")
	}
	zerolog.SetGlobalLevel(level)

	if utils.FindIndex(gameNames, cfg.Game) < 0 {
		log.Fatal().Str("game", cfg.Game).Strs("known", gameNames).Msg("unknown game")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	outcome, err := play(cfg, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("episode failed")
	}
	log.Info().Int8("outcome", int8(outcome)).Msg("game over")
}

func play(cfg *config.Config, rng *rand.Rand) (game.Outcome, error) {
	switch cfg.Game {
	case "narrow":
		return run(game.Narrow{}, cfg, rng)
	case "bandit":
		return run(game.NewBandit(rng), cfg, rng)
	case "rps":
		return run(game.RockPaperScissors{}, cfg, rng)
	case "tictactoe":
		return run(game.NewTicTacToe(), cfg, rng)
	default:
		return run(game.Count{}, cfg, rng)
	}
}

func run[S comparable](g game.Game[S], cfg *config.Config, rng *rand.Rand) (game.Outcome, error) {
	var actor engine.Actor[S]
	if cfg.Bot {
		actor = engine.NewSampler[S](rng)
	} else {
		actor = engine.NewInteractive[S](os.Stdin, os.Stdout)
	}
	return engine.NewEpisode(g, actor).Run()
}
