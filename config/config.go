package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	conf *viper.Viper
)

// defaults applied before any config file, env or flag
var defaults = map[string]interface{}{
	"app.environment": "development",
	"app.host":        "127.0.0.1",
	"app.port":        5000,
	"app.port_range":  100,
	"app.log_path":    ".",
	"app.debug":       false,
	"app.cors_origin": "*",
}

func load() *viper.Viper {

	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.polyconf")

	// POLYCONF_APP_PORT overrides app.port
	v.SetEnvPrefix("polyconf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing config file is fine, defaults and env cover everything
	_ = v.ReadInConfig()

	return v
}

// GetConfig - returns the shared configuration
func GetConfig() *viper.Viper {
	once.Do(func() {
		conf = load()
	})
	return conf
}
