package storage

import (
	"fmt"
	"time"
)

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	Scenario    string
	Runs        int
	Arrived     int
	Stalled     int
	Aborted     int
	BestUpdates int     // fewest updates among arrived runs, 0 if none arrived
	AvgUpdates  float64 // mean updates of arrived runs, 0 if none arrived
	LastRun     time.Time
}

const statsColumns = `COUNT(*),
	COALESCE(SUM(outcome = 'arrived'), 0),
	COALESCE(SUM(outcome = 'stalled'), 0),
	COALESCE(SUM(outcome = 'aborted'), 0),
	COALESCE(MIN(CASE WHEN outcome = 'arrived' THEN updates END), 0),
	COALESCE(AVG(CASE WHEN outcome = 'arrived' THEN updates END), 0),
	MAX(created_at)`

// scanStats reads statsColumns, prefixed by the scenario column when
// withScenario is set.
func scanStats(row scanner, st *ScenarioStats, withScenario bool) error {
	var lastRun any
	dest := []any{&st.Runs, &st.Arrived, &st.Stalled, &st.Aborted, &st.BestUpdates, &st.AvgUpdates, &lastRun}
	if withScenario {
		dest = append([]any{&st.Scenario}, dest...)
	}
	if err := row.Scan(dest...); err != nil {
		return err
	}
	st.LastRun = parseTime(lastRun)
	return nil
}

// ScenarioStats retrieves aggregated statistics for a specific scenario.
func (s *Store) ScenarioStats(scenario string) (*ScenarioStats, error) {
	stats := &ScenarioStats{Scenario: scenario}
	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM runs WHERE scenario = ?`, scenario)
	if err := scanStats(row, stats, false); err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	return stats, nil
}

// AllStats retrieves statistics for every scenario that has runs.
func (s *Store) AllStats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(`SELECT scenario, ` + statsColumns + ` FROM runs GROUP BY scenario`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		if err := scanStats(rows, &st, true); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.Scenario] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
