package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/env"
	customLogger "github.com/thirdweb-dev/grants-insight/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "grants-insight",
		Short: "Dashboard data service for grants stack rounds",
		Long:  "Fetches projects, votes and passport scores of the configured grants rounds, enriches them and serves the results over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("source-url", "", "Base URL of the grants stack indexer data")
	rootCmd.PersistentFlags().Int("source-timeout", 0, "Timeout in seconds for a single indexer request")
	rootCmd.PersistentFlags().Int("source-parallelism", 0, "How many rounds to fetch concurrently")
	rootCmd.PersistentFlags().Int("cache-ttl", 0, "Seconds to keep indexer responses in the cache")
	rootCmd.PersistentFlags().String("dashboard-program", "", "Program whose rounds are shown")
	rootCmd.PersistentFlags().String("dashboard-rounds-file", "", "CSV file listing the program rounds")
	rootCmd.PersistentFlags().Int("dashboard-refresh-interval", 0, "Seconds between session refreshes")
	rootCmd.PersistentFlags().Int("api-port", 0, "Port to serve the API on")
	rootCmd.PersistentFlags().String("api-basic-auth-username", "", "Basic auth username for the API")
	rootCmd.PersistentFlags().String("api-basic-auth-password", "", "Basic auth password for the API")
	rootCmd.PersistentFlags().Bool("publisher-enabled", false, "Publish enriched votes to kafka")
	rootCmd.PersistentFlags().String("publisher-brokers", "", "Kafka brokers for the vote publisher")
	rootCmd.PersistentFlags().String("export-dir", "", "Directory for parquet snapshots")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("source.url", rootCmd.PersistentFlags().Lookup("source-url"))
	viper.BindPFlag("source.timeout", rootCmd.PersistentFlags().Lookup("source-timeout"))
	viper.BindPFlag("source.parallelism", rootCmd.PersistentFlags().Lookup("source-parallelism"))
	viper.BindPFlag("cache.ttl", rootCmd.PersistentFlags().Lookup("cache-ttl"))
	viper.BindPFlag("dashboard.program", rootCmd.PersistentFlags().Lookup("dashboard-program"))
	viper.BindPFlag("dashboard.roundsFile", rootCmd.PersistentFlags().Lookup("dashboard-rounds-file"))
	viper.BindPFlag("dashboard.refreshInterval", rootCmd.PersistentFlags().Lookup("dashboard-refresh-interval"))
	viper.BindPFlag("api.port", rootCmd.PersistentFlags().Lookup("api-port"))
	viper.BindPFlag("api.basicAuth.username", rootCmd.PersistentFlags().Lookup("api-basic-auth-username"))
	viper.BindPFlag("api.basicAuth.password", rootCmd.PersistentFlags().Lookup("api-basic-auth-password"))
	viper.BindPFlag("publisher.enabled", rootCmd.PersistentFlags().Lookup("publisher-enabled"))
	viper.BindPFlag("publisher.brokers", rootCmd.PersistentFlags().Lookup("publisher-brokers"))
	viper.BindPFlag("export.dir", rootCmd.PersistentFlags().Lookup("export-dir"))
	rootCmd.AddCommand(orchestratorCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(roundsCmd)
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
