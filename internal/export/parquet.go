package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/types"
)

const DEFAULT_EXPORT_DIR = "./snapshots"

var writerOptions = []parquet.WriterOption{
	parquet.Compression(&parquet.Zstd),
	parquet.DataPageStatistics(true),
}

// WriteParquet writes the session's projects and votes to two parquet files in dir
// and returns their paths.
func WriteParquet(dir string, session *pipeline.Session) ([]string, error) {
	if dir == "" {
		dir = DEFAULT_EXPORT_DIR
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	ts := session.GeneratedAt.Unix()
	projectsPath := filepath.Join(dir, fmt.Sprintf("projects_%d.parquet", ts))
	if err := writeFile(projectsPath, toParquetProjects(session)); err != nil {
		return nil, err
	}

	votesPath := filepath.Join(dir, fmt.Sprintf("votes_%d.parquet", ts))
	if err := writeFile(votesPath, toParquetVotes(session)); err != nil {
		return nil, err
	}

	return []string{projectsPath, votesPath}, nil
}

func writeFile[T any](path string, rows []T) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close parquet file: %w", closeErr)
		}
	}()

	writer := parquet.NewGenericWriter[T](file, writerOptions...)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func toParquetProjects(session *pipeline.Session) []types.ParquetProject {
	rows := make([]types.ParquetProject, 0, len(session.Projects))
	for _, p := range session.Projects {
		rows = append(rows, types.ParquetProject{
			SnapshotId:         session.Id,
			ChainId:            p.ChainId,
			RoundId:            p.RoundId,
			RoundName:          p.RoundName,
			ProjectId:          p.ProjectId,
			Title:              p.Title,
			GrantAddress:       p.GrantAddress,
			Status:             string(p.Status),
			AmountUSD:          p.AmountUSD.String(),
			Votes:              p.Votes,
			UniqueContributors: p.UniqueContributors,
		})
	}
	return rows
}

func toParquetVotes(session *pipeline.Session) []types.ParquetVote {
	rows := make([]types.ParquetVote, 0, len(session.Votes))
	for _, v := range session.Votes {
		row := types.ParquetVote{
			SnapshotId:  session.Id,
			ChainId:     v.ChainId,
			RoundId:     v.RoundId,
			RoundName:   v.RoundName,
			VoteId:      v.Id,
			Voter:       v.Voter,
			ProjectId:   v.ProjectId,
			BlockNumber: v.BlockNumber,
			Token:       v.Token,
			TokenSymbol: v.TokenSymbol,
			AmountUSD:   v.AmountUSD.String(),
		}
		if v.Timestamp != nil {
			unix := v.Timestamp.Unix()
			row.Timestamp = &unix
		}
		rows = append(rows, row)
	}
	return rows
}
