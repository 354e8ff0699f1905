package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"quoridor/config"
	"quoridor/experiments"
	"quoridor/game"
	"quoridor/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "Path to a YAML config file")
	agents := flag.String("agents", "", "Two agent specs separated by ';', e.g. 'greedy;mcts:8,150'")
	games := flag.Int("games", 0, "Number of games per matchup")
	board := flag.Int("board", 0, "Board side length")
	walls := flag.Int("walls", -1, "Walls per player")
	diagonal := flag.String("diagonal", "", "Diagonal jump rule: blocked, wall-only or never")
	experiment := flag.String("experiment", "", "Experiment to run: match, cutoff or parallel")
	out := flag.String("out", "", "Directory for CSV records")
	printSnapshot := flag.Bool("print-snapshot", false, "Print the JSON snapshot before every turn")
	level := flag.String("log-level", "", "Log level")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "agents":
			cfg.Agents = strings.Split(*agents, ";")
		case "games":
			cfg.Games = *games
		case "board":
			cfg.BoardSize = *board
		case "walls":
			cfg.WallsPerPlayer = *walls
		case "diagonal":
			cfg.Diagonal = *diagonal
		case "experiment":
			cfg.Experiment = *experiment
		case "out":
			cfg.OutDir = *out
		case "print-snapshot":
			cfg.PrintSnapshot = *printSnapshot
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lvl, _ := cfg.Level()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exp, err := build(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid experiment")
	}

	result, err := experiments.Run(ctx, exp)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, c := range exp.Configs {
		log.Info().Msgf("agent %d (%s) won %d games", c.ID, c.Spec, result.Wins[c.ID])
	}
	log.Info().Msgf("%d games hit the turn limit", result.Draws)
	if result.Dir != "" {
		log.Info().Msgf("records written to %s", result.Dir)
	}
}

func build(cfg config.Config) (experiments.Experiment, error) {
	var exp experiments.Experiment
	switch cfg.Experiment {
	case "match":
		exp = experiments.HeadToHead("match", cfg.Agents[0], cfg.Agents[1], cfg.Games)
	case "cutoff":
		exp = experiments.CutoffSweep(meta.GO_ROUTINES, meta.EPISODES, []int{10, 20, meta.WITH_CUTOFF, 80}, cfg.Games)
	case "parallel":
		exp = experiments.ParallelSweep(meta.EPISODES, []int{2, 4, meta.GO_ROUTINES}, cfg.Games)
	default:
		return exp, fmt.Errorf("unknown experiment %q", cfg.Experiment)
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		return exp, err
	}
	exp.Game = gc
	exp.MaxTurns = cfg.MaxTurns
	exp.MaxAttempts = cfg.MaxAttempts
	exp.OutDir = cfg.OutDir
	if cfg.PrintSnapshot {
		exp.OnTurn = printTurn
	}
	return exp, nil
}

// printTurn writes the snapshot between markers so a wrapper can pick it out of stdout.
func printTurn(snap game.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode snapshot")
		return
	}
	fmt.Println("TURN_STATE_BEGIN")
	fmt.Println(string(data))
	fmt.Println("TURN_STATE_END")
}
