package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Game     GameConfig     `mapstructure:"game"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type GameConfig struct {
	PrizePool     int           `mapstructure:"prizepool"`
	MinPlayers    int           `mapstructure:"minplayers"`
	MaxPlayers    int           `mapstructure:"maxplayers"`
	SweepInterval time.Duration `mapstructure:"sweepinterval"`
}

func Read() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")

	// Defaults
	viper.SetDefault("app.name", "assassin-server")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.host", "0.0.0.0")

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.user", "myuser")
	viper.SetDefault("postgres.password", "mypassword")
	viper.SetDefault("postgres.db", "assassindb")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("game.prizepool", 100)
	viper.SetDefault("game.minplayers", 5)
	viper.SetDefault("game.maxplayers", 20)
	viper.SetDefault("game.sweepinterval", time.Minute)

	// ENV overrides with prefix ASSASSIN_ and dot-to-underscore replacement
	viper.SetEnvPrefix("ASSASSIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}

	return config
}
