package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	orchestratorCmd = &cobra.Command{
		Use:   "orchestrator",
		Short: "Refresh sessions and feed the sinks without serving the API",
		Long:  "Periodically rebuilds the dashboard session and hands it to snapshot storage, the parquet export and the kafka publisher",
		Run: func(cmd *cobra.Command, args []string) {
			RunOrchestrator(cmd, args)
		},
	}
)

func RunOrchestrator(cmd *cobra.Command, args []string) {
	log.Info().Msg("Starting orchestrator")
	ctx := context.Background()

	a, err := getApp(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.Close()

	serveMetrics()
	a.orchestrator.Start(ctx)
}
