package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string           `yaml:"env" env-default:"local"`
	StoragePath string           `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	HTTPServer  HTTPServerConfig `yaml:"http_server"`
	Migrations  MigrationsConfig `yaml:"migrations"`
	Aliases     AliasesConfig    `yaml:"aliases"`
}

type HTTPServerConfig struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type MigrationsConfig struct {
	MigrationTable string `yaml:"migration_table" env-default:"migrations"`
}

// AliasesConfig controls generated endpoint aliases.
type AliasesConfig struct {
	Length int `yaml:"length" env-default:"6"`
}

// MustLoad reads the config file named by the -config flag or CONFIG_PATH.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config file path is empty")
	}

	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// LoadByPath is the non-panicking variant of MustLoadByPath.
func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &LoadError{Path: configPath, Reason: "config file not found"}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &LoadError{Path: configPath, Reason: "failed to read config: " + err.Error()}
	}

	if cfg.Aliases.Length <= 0 {
		return nil, &LoadError{Path: configPath, Reason: "aliases.length must be positive"}
	}

	return &cfg, nil
}

type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	return e.Reason + ": " + e.Path
}

func fetchConfigPath() string {
	var res string

	if f := flag.Lookup("config"); f != nil {
		res = f.Value.String()
	} else {
		flag.StringVar(&res, "config", "", "path to config file")
		flag.Parse()
	}

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
