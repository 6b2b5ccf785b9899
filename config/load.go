package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "COSMOS_"

// Load builds a validated config from defaults, the optional file at path and
// the optional dotenv file at envFile, with the process environment applied last
// Empty paths are skipped, a missing envFile is not an error
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	env, err := readEnv(envFile)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg, env); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML or YAML file over cfg, chosen by extension
// Unknown keys are rejected
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config extension '%s'", ext)
	}
	return nil
}

// readEnv merges the dotenv file under the process environment
func readEnv(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides cfg from COSMOS_* keys of env
func ApplyEnv(cfg *Config, env map[string]string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"STAR_COUNT", &cfg.StarCount},
		{"CLUSTER_COUNT", &cfg.ClusterCount},
		{"GALAXY_STAR_COUNT", &cfg.GalaxyStarCount},
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"FILAMENT_SCATTER", &cfg.FilamentScatter},
		{"TIME_SCALE", &cfg.TimeScale},
	}

	if v, ok := env[EnvPrefix+"SEED"]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = seed
	}
	for _, f := range ints {
		v, ok := env[EnvPrefix+f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = n
	}
	for _, f := range floats {
		v, ok := env[EnvPrefix+f.key]
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
		}
		*f.dst = x
	}
	if v, ok := env[EnvPrefix+"AUTOPILOT"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sAUTOPILOT: %w", EnvPrefix, err)
		}
		cfg.Autopilot = b
	}
	return nil
}
