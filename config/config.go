package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Game     GameConfig     `mapstructure:"game"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	HTTPAddress        string `mapstructure:"http_address"`
	RPCAddress         string `mapstructure:"rpc_address"`
	MetricsAddress     string `mapstructure:"metrics_address"`
	IdleTimeoutSeconds int    `mapstructure:"idle_timeout_seconds"`
}

type GameConfig struct {
	StartingBankroll int64 `mapstructure:"starting_bankroll"`
	BigBlind         int64 `mapstructure:"big_blind"`
	SmallBlind       int64 `mapstructure:"small_blind"`
	MinPlayers       int   `mapstructure:"min_players"`
	MaxPlayers       int   `mapstructure:"max_players"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

func setDefaults() {
	viper.SetDefault("server.http_address", ":7777")
	viper.SetDefault("server.rpc_address", ":7778")
	viper.SetDefault("server.metrics_address", ":9100")
	viper.SetDefault("server.idle_timeout_seconds", 300)

	viper.SetDefault("game.starting_bankroll", 1000)
	viper.SetDefault("game.big_blind", 20)
	viper.SetDefault("game.small_blind", 10)
	viper.SetDefault("game.min_players", 2)
	viper.SetDefault("game.max_players", 8)

	viper.SetDefault("database.postgres.enabled", false)
	viper.SetDefault("database.postgres.host", "localhost")
	viper.SetDefault("database.postgres.port", 5432)
	viper.SetDefault("database.postgres.user", "quizpoker")
	viper.SetDefault("database.postgres.password", "")
	viper.SetDefault("database.postgres.dbname", "quizpoker")
}

func LoadConfig(path string) (config *Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	setDefaults()
	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// Defaults and env vars still apply when no config file is present.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err = viper.Unmarshal(&config)
	return
}
