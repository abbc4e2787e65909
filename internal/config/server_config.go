package config

import "fmt"

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

type CleanupConfig struct {
	NotificationRetentionDays int `mapstructure:"notification_retention_days"`
}

func (config ServerConfig) validate() error {
	if config.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", config.Port)
	}
	return nil
}
