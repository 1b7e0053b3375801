package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Assistant ModelConfig     `mapstructure:"assistant"`
	Sheets    SheetSyncConfig `mapstructure:"sheets"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// Mode 是 gin 的运行模式：debug / release / test
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type ModelConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type SheetSyncConfig struct {
	// 自动同步间隔（秒），0 表示关闭后台同步
	SyncIntervalSec int `mapstructure:"sync_interval_sec"`
}

// LoadConfig 读取配置文件
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// 支持环境变量覆盖 (例如 Docker 里设 DASHTEAM_JWT_SECRET)
	viper.SetEnvPrefix("DASHTEAM")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("jwt.expire_hours", 72)
	viper.SetDefault("sheets.sync_interval_sec", 60)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &cfg, nil
}
