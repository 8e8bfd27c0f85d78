package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type SourceConfig struct {
	URL         string `mapstructure:"url"`
	Timeout     int    `mapstructure:"timeout"`
	Parallelism int    `mapstructure:"parallelism"`
}

type CacheConfig struct {
	TTL    int           `mapstructure:"ttl"`
	Memory *MemoryConfig `mapstructure:"memory"`
	Redis  *RedisConfig  `mapstructure:"redis"`
	Badger *BadgerConfig `mapstructure:"badger"`
}

type MemoryConfig struct {
	MaxItems int `mapstructure:"maxItems"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"poolSize"`
	EnableTLS bool   `mapstructure:"enableTLS"`
}

type BadgerConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"inMemory"`
}

type RoundConfig struct {
	Program      string  `mapstructure:"program"`
	RoundId      string  `mapstructure:"roundId"`
	ChainId      uint64  `mapstructure:"chainId"`
	RoundName    string  `mapstructure:"roundName"`
	MatchingPool float64 `mapstructure:"matchingPool"`
	StartingTime string  `mapstructure:"startingTime"`
}

type DashboardConfig struct {
	Program         string        `mapstructure:"program"`
	Rounds          []RoundConfig `mapstructure:"rounds"`
	RoundsFile      string        `mapstructure:"roundsFile"`
	RefreshInterval int           `mapstructure:"refreshInterval"`
}

type BasicAuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type APIConfig struct {
	Host      string          `mapstructure:"host"`
	Port      int             `mapstructure:"port"`
	BasicAuth BasicAuthConfig `mapstructure:"basicAuth"`
}

type StorageConfig struct {
	Snapshot StorageConnectionConfig `mapstructure:"snapshot"`
}

type StorageConnectionConfig struct {
	Clickhouse *ClickhouseConfig `mapstructure:"clickhouse"`
	Postgres   *PostgresConfig   `mapstructure:"postgres"`
	Memory     *MemoryConfig     `mapstructure:"memory"`
}

type ClickhouseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	EnableTLS bool   `mapstructure:"enableTLS"`
}

type PostgresConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslMode"`
	MaxOpenConns    int    `mapstructure:"maxOpenConns"`
	MaxIdleConns    int    `mapstructure:"maxIdleConns"`
	MaxConnLifetime int    `mapstructure:"maxConnLifetime"`
	ConnectTimeout  int    `mapstructure:"connectTimeout"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type ExportConfig struct {
	Dir string    `mapstructure:"dir"`
	S3  *S3Config `mapstructure:"s3"`
}

type PublisherConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Brokers   string `mapstructure:"brokers"`
	Topic     string `mapstructure:"topic"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	EnableTLS bool   `mapstructure:"enableTLS"`
}

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Source    SourceConfig    `mapstructure:"source"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	API       APIConfig       `mapstructure:"api"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Export    ExportConfig    `mapstructure:"export"`
	Publisher PublisherConfig `mapstructure:"publisher"`
}

var Cfg Config

func LoadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}

		// secrets are optional, the public data source needs no credentials
		viper.SetConfigName("secrets")
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error loading secrets file: %v", err)
			}
		}
	}

	// sets e.g. SOURCE_URL to source.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
