package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
	Random    RandomConfig    `mapstructure:"random"`
	Reference ReferenceConfig `mapstructure:"reference"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// AllowAll reports whether every origin is permitted.
func (c CORSConfig) AllowAll() bool {
	if len(c.Origins) == 0 {
		return true
	}
	for _, o := range c.Origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// validate rejects origins the CORS middleware cannot match.
func (c CORSConfig) validate() error {
	for _, o := range c.Origins {
		if o == "*" || strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			continue
		}
		return fmt.Errorf("origin %q must be * or start with http:// or https://", o)
	}
	return nil
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text / json
}

type RandomConfig struct {
	Seed int64 `mapstructure:"seed"` // 0 seeds from the clock
}

type ReferenceConfig struct {
	Path string `mapstructure:"path"` // empty uses the embedded tables
}

// env names used by existing deployments
var envBindings = map[string]string{
	"mongo.uri":      "MONGO_URL",
	"mongo.database": "DB_NAME",
	"cors.origins":   "CORS_ORIGINS",
	"server.port":    "PORT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8001")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "flow_intel")
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("random.seed", 0)
	v.SetDefault("reference.path", "")
}

// Load reads the YAML file at path (optional) and overlays the environment,
// including variables from a .env file in the working directory.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeConfig, "load .env", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	// ENV 覆盖 YAML
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, wrapErrors.WrapWithCode(wrapErrors.CodeConfig, "bind env "+env, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, wrapErrors.WrapWithCode(wrapErrors.CodeConfig, "read config", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, wrapErrors.WrapWithCode(wrapErrors.CodeConfig, "stat config", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeConfig, "unmarshal config", err)
	}
	cfg.CORS.Origins = splitOrigins(cfg.CORS.Origins)
	if err := cfg.CORS.validate(); err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeConfig, "validate cors origins", err)
	}
	if !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	return &cfg, nil
}

// splitOrigins flattens comma separated entries, as CORS_ORIGINS arrives as
// one string.
func splitOrigins(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, o := range strings.Split(entry, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
