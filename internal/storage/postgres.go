package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

// postgres caps a statement at 65535 bind parameters
const postgresInsertBatchSize = 1000

const postgresSchema = `
CREATE TABLE IF NOT EXISTS snapshot_projects (
	snapshot_id         TEXT NOT NULL,
	program             TEXT NOT NULL,
	generated_at        TIMESTAMPTZ NOT NULL,
	chain_id            BIGINT NOT NULL,
	round_id            TEXT NOT NULL,
	round_name          TEXT NOT NULL,
	project_id          TEXT NOT NULL,
	title               TEXT NOT NULL,
	grant_address       TEXT NOT NULL,
	status              TEXT NOT NULL,
	amount_usd          NUMERIC NOT NULL,
	votes               BIGINT NOT NULL,
	unique_contributors BIGINT NOT NULL,
	PRIMARY KEY (snapshot_id, chain_id, round_id, project_id)
);

CREATE TABLE IF NOT EXISTS snapshot_votes (
	snapshot_id  TEXT NOT NULL,
	program      TEXT NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL,
	chain_id     BIGINT NOT NULL,
	round_id     TEXT NOT NULL,
	round_name   TEXT NOT NULL,
	vote_id      TEXT NOT NULL,
	voter        TEXT NOT NULL,
	project_id   TEXT NOT NULL,
	block_number BIGINT NOT NULL,
	token        TEXT NOT NULL,
	token_symbol TEXT NOT NULL,
	amount_usd   NUMERIC NOT NULL,
	voted_at     TIMESTAMPTZ,
	PRIMARY KEY (snapshot_id, chain_id, round_id, vote_id)
);`

type PostgresConnector struct {
	db  *sql.DB
	cfg *config.PostgresConfig
}

func NewPostgresConnector(cfg *config.PostgresConfig) (*PostgresConnector, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
		log.Info().Msg("No SSL mode specified, defaulting to 'require' for secure connection")
	}
	connStr += fmt.Sprintf(" sslmode=%s", sslMode)

	if cfg.ConnectTimeout > 0 {
		connStr += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err := db.Exec(postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create snapshot tables: %w", err)
	}

	return &PostgresConnector{
		db:  db,
		cfg: cfg,
	}, nil
}

func (p *PostgresConnector) InsertProjects(meta SnapshotMeta, projects []common.Project) error {
	columns := []string{
		"snapshot_id", "program", "generated_at", "chain_id", "round_id", "round_name", "project_id",
		"title", "grant_address", "status", "amount_usd", "votes", "unique_contributors",
	}
	for start := 0; start < len(projects); start += postgresInsertBatchSize {
		end := min(start+postgresInsertBatchSize, len(projects))
		rows := make([][]interface{}, 0, end-start)
		for _, project := range projects[start:end] {
			rows = append(rows, []interface{}{
				meta.Id, meta.Program, meta.GeneratedAt, project.ChainId, project.RoundId, project.RoundName,
				project.ProjectId, project.Title, project.GrantAddress, string(project.Status),
				project.AmountUSD.String(), project.Votes, project.UniqueContributors,
			})
		}
		if err := p.insertRows("snapshot_projects", columns, rows); err != nil {
			return fmt.Errorf("failed to insert snapshot projects: %w", err)
		}
	}
	return nil
}

func (p *PostgresConnector) InsertVotes(meta SnapshotMeta, votes []common.Vote) error {
	columns := []string{
		"snapshot_id", "program", "generated_at", "chain_id", "round_id", "round_name", "vote_id",
		"voter", "project_id", "block_number", "token", "token_symbol", "amount_usd", "voted_at",
	}
	for start := 0; start < len(votes); start += postgresInsertBatchSize {
		end := min(start+postgresInsertBatchSize, len(votes))
		rows := make([][]interface{}, 0, end-start)
		for _, vote := range votes[start:end] {
			var votedAt interface{}
			if vote.Timestamp != nil {
				votedAt = *vote.Timestamp
			}
			rows = append(rows, []interface{}{
				meta.Id, meta.Program, meta.GeneratedAt, vote.ChainId, vote.RoundId, vote.RoundName,
				vote.Id, vote.Voter, vote.ProjectId, vote.BlockNumber, vote.Token, vote.TokenSymbol,
				vote.AmountUSD.String(), votedAt,
			})
		}
		if err := p.insertRows("snapshot_votes", columns, rows); err != nil {
			return fmt.Errorf("failed to insert snapshot votes: %w", err)
		}
	}
	return nil
}

func (p *PostgresConnector) insertRows(table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	query, args := buildInsertQuery(table, columns, rows)
	_, err := p.db.Exec(query, args...)
	return err
}

// buildInsertQuery renders a multi-row INSERT with positional placeholders.
func buildInsertQuery(table string, columns []string, rows [][]interface{}) (string, []interface{}) {
	valueStrings := make([]string, 0, len(rows))
	valueArgs := make([]interface{}, 0, len(rows)*len(columns))

	for i, row := range rows {
		placeholders := make([]string, len(columns))
		for j := range columns {
			placeholders[j] = fmt.Sprintf("$%d", i*len(columns)+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
		valueArgs = append(valueArgs, row...)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s)
	          VALUES %s
	          ON CONFLICT DO NOTHING`, table, strings.Join(columns, ", "), strings.Join(valueStrings, ","))
	return query, valueArgs
}

func (p *PostgresConnector) Close() error {
	return p.db.Close()
}
