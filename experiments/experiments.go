// Package experiments runs repeated matchups between search algorithm
// configurations and stores the results as CSV records. Useful for
// strength comparisons such as checking that a larger simulation budget
// does not lose more often against a fixed opponent.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"sudottt/engine"
	"sudottt/experiments/metrics"
)

// Run plays every configured matchup and writes agent, game and move
// records under the configured results directory.
func Run(cfg *Config) error {
	writer, err := metrics.NewWriter(cfg.Results)
	if err != nil {
		return err
	}

	agentRecords := make([]metrics.AgentRecord, 0, len(cfg.Agents))
	for _, agent := range cfg.Agents {
		agentRecords = append(agentRecords, metrics.AgentRecord{
			ID:          agent.ID,
			Algorithm:   agent.Algorithm,
			Simulations: agent.Simulations,
			Depth:       agent.Depth,
			Seed:        agent.Seed,
		})
	}
	if err := writer.WriteAgentRecords(agentRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored agent records in %s", writer.BaseDir())

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for mi, matchup := range cfg.Matchups {
		log.Info().Msgf("starting matchup %d of %d: agent %d vs agent %d",
			mi+1, len(cfg.Matchups), matchup.Agent1, matchup.Agent2)

		for i := 0; i < cfg.Games; i++ {
			gameID++
			// Alternate which agent plays X to cancel the first-move
			// advantage across the matchup.
			agentX, agentO := cfg.agent(matchup.Agent1), cfg.agent(matchup.Agent2)
			if i%2 == 1 {
				agentX, agentO = agentO, agentX
			}

			record, moves, err := playGame(cfg, gameID, agentX, agentO)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().Msgf("completed game %d of %d with result %d",
				i+1, cfg.Games, record.Result)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}

func playGame(cfg *Config, gameID int, agentX, agentO AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	state, err := engine.NewGame(cfg.Game)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	collectorX, collectorO := metrics.NewCollector(), metrics.NewCollector()
	algoX, err := engine.NewAlgorithm(algorithmConfig(agentX, collectorX))
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	algoO, err := engine.NewAlgorithm(algorithmConfig(agentO, collectorO))
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.NewLocalEngine(state, algoX, algoO)
	result, moves, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	var durationMs int64
	moveRecords := make([]metrics.MoveRecord, 0, len(moves))
	for _, move := range moves {
		durationMs += move.DurationMs
		moveRecords = append(moveRecords, metrics.MoveRecord{Game: gameID, MoveMetric: move})
	}

	record := metrics.GameRecord{
		ID:     gameID,
		AgentX: agentX.ID,
		AgentO: agentO.ID,
		GameMetric: metrics.GameMetric{
			StartingPlayer: agentX.ID,
			Result:         result,
			Moves:          len(moves),
			DurationMs:     durationMs,
		},
		SearchX: collectorX.Snapshot(),
		SearchO: collectorO.Snapshot(),
	}
	return record, moveRecords, nil
}

func algorithmConfig(agent AgentConfig, collector metrics.Collector) engine.AlgorithmConfig {
	return engine.AlgorithmConfig{
		Name:        agent.Algorithm,
		Simulations: agent.Simulations,
		Depth:       agent.Depth,
		Seed:        agent.Seed,
		Collector:   collector,
	}
}
