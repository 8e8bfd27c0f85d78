package storage

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

var clickhouseSchema = []string{
	`CREATE TABLE IF NOT EXISTS %s.snapshot_projects (
		snapshot_id String,
		program String,
		generated_at DateTime64(3, 'UTC'),
		chain_id UInt64,
		round_id String,
		round_name String,
		project_id String,
		title String,
		grant_address String,
		status LowCardinality(String),
		amount_usd Decimal(38, 18),
		votes UInt64,
		unique_contributors UInt64
	) ENGINE = ReplacingMergeTree
	ORDER BY (snapshot_id, chain_id, round_id, project_id)`,
	`CREATE TABLE IF NOT EXISTS %s.snapshot_votes (
		snapshot_id String,
		program String,
		generated_at DateTime64(3, 'UTC'),
		chain_id UInt64,
		round_id String,
		round_name String,
		vote_id String,
		voter String,
		project_id String,
		block_number UInt64,
		token String,
		token_symbol LowCardinality(String),
		amount_usd Decimal(38, 18),
		voted_at Nullable(DateTime64(3, 'UTC'))
	) ENGINE = ReplacingMergeTree
	ORDER BY (snapshot_id, chain_id, round_id, vote_id)`,
}

type ClickHouseConnector struct {
	conn clickhouse.Conn
	cfg  *config.ClickhouseConfig
}

func NewClickHouseConnector(cfg *config.ClickhouseConfig) (*ClickHouseConnector, error) {
	conn, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}
	for _, ddl := range clickhouseSchema {
		if err := conn.Exec(context.Background(), fmt.Sprintf(ddl, cfg.Database)); err != nil {
			return nil, fmt.Errorf("failed to create snapshot tables: %w", err)
		}
	}
	log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("Connected to ClickHouse")
	return &ClickHouseConnector{
		conn: conn,
		cfg:  cfg,
	}, nil
}

func connectDB(cfg *config.ClickhouseConfig) (clickhouse.Conn, error) {
	port := cfg.Port
	if port == 0 {
		return nil, fmt.Errorf("invalid CLICKHOUSE_PORT: %d", port)
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr:     []string{fmt.Sprintf("%s:%d", cfg.Host, port)},
		Protocol: clickhouse.Native,
		TLS: func() *tls.Config {
			if cfg.EnableTLS {
				return &tls.Config{}
			}
			return nil
		}(),
		Auth: clickhouse.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
			Database: cfg.Database,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (c *ClickHouseConnector) InsertProjects(meta SnapshotMeta, projects []common.Project) error {
	if len(projects) == 0 {
		return nil
	}
	query := fmt.Sprintf(`INSERT INTO %s.snapshot_projects (
		snapshot_id, program, generated_at, chain_id, round_id, round_name, project_id,
		title, grant_address, status, amount_usd, votes, unique_contributors
	)`, c.cfg.Database)

	rows := make([][]interface{}, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, []interface{}{
			meta.Id, meta.Program, meta.GeneratedAt, project.ChainId, project.RoundId, project.RoundName,
			project.ProjectId, project.Title, project.GrantAddress, string(project.Status),
			project.AmountUSD, project.Votes, project.UniqueContributors,
		})
	}
	if err := c.batchInsert(query, rows); err != nil {
		return fmt.Errorf("failed to insert snapshot projects: %w", err)
	}
	return nil
}

func (c *ClickHouseConnector) InsertVotes(meta SnapshotMeta, votes []common.Vote) error {
	if len(votes) == 0 {
		return nil
	}
	query := fmt.Sprintf(`INSERT INTO %s.snapshot_votes (
		snapshot_id, program, generated_at, chain_id, round_id, round_name, vote_id,
		voter, project_id, block_number, token, token_symbol, amount_usd, voted_at
	)`, c.cfg.Database)

	rows := make([][]interface{}, 0, len(votes))
	for _, vote := range votes {
		rows = append(rows, []interface{}{
			meta.Id, meta.Program, meta.GeneratedAt, vote.ChainId, vote.RoundId, vote.RoundName,
			vote.Id, vote.Voter, vote.ProjectId, vote.BlockNumber, vote.Token, vote.TokenSymbol,
			vote.AmountUSD, vote.Timestamp,
		})
	}
	if err := c.batchInsert(query, rows); err != nil {
		return fmt.Errorf("failed to insert snapshot votes: %w", err)
	}
	return nil
}

func (c *ClickHouseConnector) batchInsert(query string, rows [][]interface{}) error {
	batch, err := c.conn.PrepareBatch(context.Background(), query)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := batch.Append(row...); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (c *ClickHouseConnector) Close() error {
	return c.conn.Close()
}
