package orchestrator

import (
	"context"

	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/export"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/publisher"
	"github.com/thirdweb-dev/grants-insight/internal/storage"
)

// ISink receives every successfully built session.
type ISink interface {
	Name() string
	Handle(ctx context.Context, session *pipeline.Session) error
}

type SnapshotSink struct {
	storage storage.ISnapshotStorage
	program string
}

func NewSnapshotSink(s storage.ISnapshotStorage, program string) *SnapshotSink {
	return &SnapshotSink{storage: s, program: program}
}

func (s *SnapshotSink) Name() string {
	return "snapshot_storage"
}

func (s *SnapshotSink) Handle(ctx context.Context, session *pipeline.Session) error {
	meta := storage.SnapshotMeta{Id: session.Id, Program: s.program, GeneratedAt: session.GeneratedAt}
	if err := s.storage.InsertProjects(meta, session.Projects); err != nil {
		return err
	}
	return s.storage.InsertVotes(meta, session.Votes)
}

// ExportSink writes parquet files and uploads them when an uploader is set.
type ExportSink struct {
	cfg      *config.ExportConfig
	program  string
	uploader *export.S3Uploader
}

func NewExportSink(cfg *config.ExportConfig, program string, uploader *export.S3Uploader) *ExportSink {
	return &ExportSink{cfg: cfg, program: program, uploader: uploader}
}

func (s *ExportSink) Name() string {
	return "export"
}

func (s *ExportSink) Handle(ctx context.Context, session *pipeline.Session) error {
	files, err := export.WriteParquet(s.cfg.Dir, session)
	if err != nil {
		return err
	}
	if s.uploader == nil {
		return nil
	}
	return s.uploader.Upload(ctx, s.program, files)
}

type PublisherSink struct {
	publisher *publisher.Publisher
}

func NewPublisherSink(p *publisher.Publisher) *PublisherSink {
	return &PublisherSink{publisher: p}
}

func (s *PublisherSink) Name() string {
	return "kafka"
}

func (s *PublisherSink) Handle(ctx context.Context, session *pipeline.Session) error {
	return s.publisher.PublishSession(ctx, session)
}
