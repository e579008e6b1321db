package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentRecord struct {
	ID          int
	Algorithm   string
	Simulations int
	Depth       int
	Seed        uint64
}

type GameRecord struct {
	ID     int
	AgentX int // AgentRecord.ID
	AgentO int // AgentRecord.ID
	GameMetric
	SearchX SearchMetric
	SearchO SearchMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores experiment results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	header := []string{"id", "algorithm", "simulations", "depth", "seed"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Algorithm,
			strconv.Itoa(record.Simulations),
			strconv.Itoa(record.Depth),
			strconv.FormatUint(record.Seed, 10),
		})
	}
	return w.writeCSV("agent_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "agent_x", "agent_o", "starting_player", "result", "moves",
		"duration_ms", "simulations_x", "simulations_o",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.AgentX),
			strconv.Itoa(record.AgentO),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Result),
			strconv.Itoa(record.Moves),
			strconv.FormatInt(record.DurationMs, 10),
			strconv.Itoa(record.SearchX.Simulations),
			strconv.Itoa(record.SearchO.Simulations),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "duration_ms"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.FormatInt(record.DurationMs, 10),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}
