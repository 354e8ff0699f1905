package experiments

import (
	"context"
	"fmt"

	"quoridor/agent"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/session"

	"github.com/rs/zerolog/log"
)

// Experiment plays Games games for each matchup of agent configs.
type Experiment struct {
	Name        string
	Game        game.Config
	Configs     []metrics.AgentConfig
	MatchUps    [][2]metrics.AgentConfig
	Games       int  // Per match up
	Alternate   bool // Swap seats every other game
	MaxTurns    int
	MaxAttempts int
	OutDir      string // Records are written under OutDir/Name when set
	OnTurn      func(game.Snapshot)
}

// Result holds the records of a finished experiment.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // Games won per AgentConfig.ID
	Draws int         // Games stopped at the turn limit
	Dir   string      // Where the records were written, if anywhere
}

// HeadToHead pits two agent specs against each other, alternating seats.
func HeadToHead(name, spec1, spec2 string, games int) Experiment {
	a := metrics.AgentConfig{ID: 1, Spec: spec1}
	b := metrics.AgentConfig{ID: 2, Spec: spec2}
	return Experiment{
		Name:      name,
		Game:      game.DefaultConfig(),
		Configs:   []metrics.AgentConfig{a, b},
		MatchUps:  [][2]metrics.AgentConfig{{a, b}},
		Games:     games,
		Alternate: true,
	}
}

// CutoffSweep pairs a full-playout MCTS baseline against agents that stop
// their rollouts at each cutoff.
func CutoffSweep(goroutines, episodes int, cutoffs []int, games int) Experiment {
	// A cutoff past any realistic game length is a full playout
	baseline := metrics.AgentConfig{ID: 0, Spec: fmt.Sprintf("mcts:%d,%d,%d", goroutines, episodes, 100000)}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, cutoff := range cutoffs {
		config := metrics.AgentConfig{ID: i + 1, Spec: fmt.Sprintf("mcts:%d,%d,%d", goroutines, episodes, cutoff)}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:      "cutoff",
		Game:      game.DefaultConfig(),
		Configs:   configs,
		MatchUps:  matchUps,
		Games:     games,
		Alternate: true,
	}
}

// ParallelSweep pairs a sequential MCTS baseline against agents with more goroutines.
func ParallelSweep(episodes int, goroutines []int, games int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Spec: fmt.Sprintf("mcts:1,%d", episodes)}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, n := range goroutines {
		config := metrics.AgentConfig{ID: i + 1, Spec: fmt.Sprintf("mcts:%d,%d", n, episodes)}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:      "parallelization",
		Game:      game.DefaultConfig(),
		Configs:   configs,
		MatchUps:  matchUps,
		Games:     games,
		Alternate: true,
	}
}

// Run plays every matchup and writes the records to CSV when OutDir is set.
func Run(ctx context.Context, exp Experiment) (Result, error) {
	result := Result{Wins: map[int]int{}}
	count := 0

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), matchup[0], matchup[1])

		for i := 0; i < exp.Games; i++ {
			seats := matchup
			if exp.Alternate && i%2 == 1 {
				seats = [2]metrics.AgentConfig{matchup[1], matchup[0]}
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(exp.MatchUps), i+1, exp.Games)

			winner, gameMetric, moveMetrics, err := runGame(ctx, exp, seats)
			if err != nil {
				return result, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     seats[0].ID,
				Agent2:     seats[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if winner == game.NoPlayer {
				result.Draws++
			} else {
				result.Wins[seats[winner].ID]++
			}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(exp.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutDir == "" {
		return result, nil
	}
	dir, err := store(exp, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

func store(exp Experiment, result Result) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays a single game between freshly built agents.
func runGame(ctx context.Context, exp Experiment, seats [2]metrics.AgentConfig) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]agent.Agent, 0, len(seats))
	for _, config := range seats {
		a, err := agent.New(config.Spec)
		if err != nil {
			return game.NoPlayer, metrics.GameMetric{}, nil, err
		}
		agents = append(agents, a)
	}

	s, err := session.New(exp.Game)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(s, agents,
		engine.WithMaxTurns(exp.MaxTurns),
		engine.WithMaxAttempts(exp.MaxAttempts),
		engine.WithSnapshotHook(exp.OnTurn),
	)
	return e.Run(ctx)
}
