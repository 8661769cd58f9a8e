package database

import (
	"fmt"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/entity"
)

type reportRepo struct {
	db dbConn
}

func newReportRepo(db dbConn) contract.ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) CreateRun(run *entity.ReportRun) error {
	query := `
		INSERT INTO report_runs (slack_channel_id, period, total_count, posted_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		run.SlackChannelID,
		run.Period,
		run.TotalCount,
		run.PostedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create report run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	run.ID = id
	return nil
}

func (r *reportRepo) CreateEntries(runID int64, entries []entity.RankingEntry) error {
	query := `
		INSERT INTO report_entries (run_id, position, rank, display_name, count)
		VALUES (?, ?, ?, ?, ?)
	`

	for i, e := range entries {
		if _, err := r.db.Exec(query, runID, i, e.Rank, e.Name, e.Count); err != nil {
			return fmt.Errorf("failed to create report entry: %w", err)
		}
	}

	return nil
}

// ListRuns returns the newest runs first. An empty channel ID lists every channel.
func (r *reportRepo) ListRuns(slackChannelID string, limit int) ([]*entity.ReportRun, error) {
	query := `
		SELECT id, slack_channel_id, period, total_count, posted_at
		FROM report_runs
		WHERE (? = '' OR slack_channel_id = ?)
		ORDER BY posted_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, slackChannelID, slackChannelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.ReportRun
	for rows.Next() {
		run := &entity.ReportRun{}
		if err := rows.Scan(
			&run.ID,
			&run.SlackChannelID,
			&run.Period,
			&run.TotalCount,
			&run.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *reportRepo) GetEntries(runID int64) ([]entity.RankingEntry, error) {
	query := `
		SELECT rank, display_name, count
		FROM report_entries
		WHERE run_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.RankingEntry
	for rows.Next() {
		var e entity.RankingEntry
		if err := rows.Scan(&e.Rank, &e.Name, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan report entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
