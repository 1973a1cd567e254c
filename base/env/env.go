package env

import (
	"os"

	"github.com/spf13/viper"
)

// PodName example: nftmarket-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName is ENV_NAME, or the env_name config key when unset
func EnvName() string {
	return lookup("ENV_NAME", "env_name")
}

// AppName is APP_NAME, or the app_name config key when unset
func AppName() string {
	return lookup("APP_NAME", "app_name")
}

func lookup(envKey, configKey string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return viper.GetString(configKey)
}
