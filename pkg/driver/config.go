package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// path is given.
const DefaultConfigFile = "reef.yml"

// DefaultDumpFile is where token and AST dumps land when debugging is on,
// unless the config overrides it.
const DefaultDumpFile = "REEF_LOG.log"

// Config controls driver behavior around the core pipeline. Debug level 1
// dumps the parsed program to the dump file; level 2 also dumps the token
// sequence. Plain disables colored diagnostics.
type Config struct {
	Debug    int    `yaml:"debug"`
	Plain    bool   `yaml:"plain"`
	DumpFile string `yaml:"dump_file"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{DumpFile: DefaultDumpFile}
}

// LoadConfig reads a reef.yml-style file. A missing file is not an error;
// unknown keys are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()
	if err := decodeConfig(file, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if cfg.DumpFile == "" {
		cfg.DumpFile = DefaultDumpFile
	}
	return nil
}
