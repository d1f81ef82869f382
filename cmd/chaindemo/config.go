package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlchain/chain"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	flagBounds  = "bounds"
	flagParse   = "parse"
	flagVerbose = "verbose"
)

// Config is the harness configuration. Values come from an optional YAML
// file; flags given on the command line take precedence.
type Config struct {
	Bounds  string `yaml:"bounds"`
	Parse   string `yaml:"parse"`
	Verbose bool   `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Bounds: chain.DefaultBoundsMode.String(),
		Parse:  chain.DefaultParsePolicy.String(),
	}
}

// loadConfig reads a YAML file over the defaults. Unknown keys are rejected;
// an empty file yields the defaults.
func loadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := defaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// mergeFlags returns file with every explicitly set flag copied from flagged.
func mergeFlags(file, flagged Config, fs *pflag.FlagSet) Config {
	out := file
	if fs.Changed(flagBounds) {
		out.Bounds = flagged.Bounds
	}
	if fs.Changed(flagParse) {
		out.Parse = flagged.Parse
	}
	if fs.Changed(flagVerbose) {
		out.Verbose = flagged.Verbose
	}

	return out
}

// chainOptions translates the configuration into chain options.
func (c Config) chainOptions(logger *zap.Logger) ([]chain.Option, error) {
	bounds, err := chain.ParseBoundsMode(c.Bounds)
	if err != nil {
		return nil, err
	}
	policy, err := chain.ParseParsePolicy(c.Parse)
	if err != nil {
		return nil, err
	}
	opts := []chain.Option{chain.WithBounds(bounds), chain.WithParsePolicy(policy)}
	if logger != nil {
		opts = append(opts, chain.WithLogger(logger))
	}

	return opts, nil
}
