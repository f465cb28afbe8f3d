package resource

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"beltempo/configs"
)

var properties *viper.Viper
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

// init loads the bundled application.yml, or the file named by PROPERTIES_FILE_PATH.
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := Init(value); err != nil {
			log.Fatalf("Fail to read properties: %v", err)
		}
		return
	}
	if err := InitFromBytes(configs.DefaultProperties); err != nil {
		log.Fatalf("Fail to read bundled properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	load(v)
	return nil
}

// InitFromBytes replaces the loaded properties with the given YAML document.
func InitFromBytes(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}
	load(v)
	return nil
}

func load(v *viper.Viper) {
	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}
	properties = v
}

// parsePropertiesMap flattens the YAML tree into dotted keys, resolving ${ENV:default} values.
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value. Plain values are returned untouched
// and an unset variable without default resolves to the empty string.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}
	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
