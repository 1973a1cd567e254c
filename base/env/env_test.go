package env

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	req := require.New(t)
	viper.Set("env_name", "local")
	viper.Set("app_name", "keeper")
	defer viper.Reset()

	t.Setenv("ENV_NAME", "")
	t.Setenv("APP_NAME", "")
	req.Equal("local", EnvName())
	req.Equal("keeper", AppName())

	t.Setenv("ENV_NAME", "prod")
	req.Equal("prod", EnvName())
}
