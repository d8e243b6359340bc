package renamify

import (
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	DryRun   bool   `mapstructure:"dryRun"`
}

// ReadConfig loads configuration from RENAMIFY_* environment variables.
// There is no config file; every knob has a default.
func ReadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("renamify")
	v.AutomaticEnv()
	v.SetDefault("logLevel", "info")
	v.SetDefault("dryRun", false)

	var config Config
	err := v.Unmarshal(&config)
	return config, err
}
