package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds generation defaults. Command-line flags override every field.
type Config struct {
	Length         int
	Count          int
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	AllowAmbiguous bool
}

// Load resolves defaults from, in increasing precedence: built-ins, an
// optional passforge.yaml, and PASSFORGE_* environment variables. A local
// .env file is folded into the environment first.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	v := viper.New()
	v.SetDefault("length", 16)
	v.SetDefault("count", 1)
	v.SetDefault("uppercase", true)
	v.SetDefault("lowercase", true)
	v.SetDefault("digits", true)
	v.SetDefault("symbols", true)
	v.SetDefault("allow_ambiguous", false)

	v.SetEnvPrefix("PASSFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("passforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "passforge"))
	}
	if err := v.ReadInConfig(); err == nil {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return Config{
		Length:         v.GetInt("length"),
		Count:          v.GetInt("count"),
		Uppercase:      v.GetBool("uppercase"),
		Lowercase:      v.GetBool("lowercase"),
		Digits:         v.GetBool("digits"),
		Symbols:        v.GetBool("symbols"),
		AllowAmbiguous: v.GetBool("allow_ambiguous"),
	}
}
