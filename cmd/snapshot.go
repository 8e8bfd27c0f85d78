package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Build one session, export it and exit",
		Long:  "Builds a single dashboard session, writes it to snapshot storage and parquet files, uploads the files when s3 is configured and exits. Exits non-zero when the session cannot be built.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSnapshot(cmd.Context())
		},
	}
)

func RunSnapshot(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := getApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.orchestrator.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to build session: %w", err)
	}

	// the export sink is only registered on the orchestrator when uploads are configured
	if !a.orchestrator.HasSink(a.exportSink.Name()) {
		if err := a.exportSink.Handle(ctx, session); err != nil {
			return fmt.Errorf("failed to export session: %w", err)
		}
	}

	log.Info().
		Str("session", session.Id).
		Int("projects", len(session.Projects)).
		Int("votes", len(session.Votes)).
		Int("warnings", len(session.Warnings)).
		Msg("Snapshot complete")
	return nil
}
