package configs

import (
	"errors"

	"github.com/spf13/viper"
)

// ErrMissingWeatherAPIKey is returned by Validate when no forecast key was provided.
var ErrMissingWeatherAPIKey = errors.New("WEATHER_API_KEY is not set")

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	WeatherAPIKey   string
}

// LoadEnv reads the process environment. It is called once from main; the result is
// passed down explicitly and never mutated afterwards.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "beltempo"),
		ContextPath:     getStringOrDefault(v, "CONTEXT_PATH", ""),
		WeatherAPIKey:   v.GetString("WEATHER_API_KEY"),
	}
}

// Validate reports configuration that must stop the process at startup.
func (env *EnvConfig) Validate() error {
	if env.WeatherAPIKey == "" {
		return ErrMissingWeatherAPIKey
	}
	return nil
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
