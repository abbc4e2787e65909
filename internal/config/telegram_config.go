package config

import "github.com/spf13/viper"

// TelegramConfig configures the optional admin alert channel. An empty token
// disables it.
type TelegramConfig struct {
	Token       string `mapstructure:"token"`
	AdminChatID int64  `mapstructure:"admin_chat_id"`
}

func (config TelegramConfig) Enabled() bool {
	return config.Token != ""
}

func (config TelegramConfig) bindEnvironmentVariables() error {
	var errs []error
	if err := viper.BindEnv("telegram.token", "TG_TOKEN"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("telegram.admin_chat_id", "TG_ADMIN_CHAT_ID"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
