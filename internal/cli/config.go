package cli

import (
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/graphson"
)

// Config is the optional graphson.toml file.
//
//	[lambda]
//	language = "gremlin-groovy"
//	host_languages = ["gremlin-python", "gremlin-jython"]
//
//	[aliases]
//	"janusgraph:Id" = "g:Int64"
//
//	[server]
//	addr = ":8182"
type Config struct {
	Lambda  LambdaConfig      `toml:"lambda"`
	Aliases map[string]string `toml:"aliases"`
	Server  ServerConfig      `toml:"server"`
}

// LambdaConfig controls how lambdas are written.
type LambdaConfig struct {
	Language      string   `toml:"language"`
	HostLanguages []string `toml:"host_languages"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

const defaultAddr = "localhost:8182"

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Lambda: LambdaConfig{
			Language:      graphson.DefaultLambdaLanguage,
			HostLanguages: slices.Clone(graphson.DefaultHostLanguages),
		},
		Server: ServerConfig{Addr: defaultAddr},
	}
}

// LoadConfig reads path and fills unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := readFile(path, errors.ErrCodeInvalidConfig)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML configuration text.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	return cfg, nil
}

// Options converts the configuration into codec options.
func (c *Config) Options() []graphson.Option {
	opts := []graphson.Option{
		graphson.WithLambdaLanguage(c.Lambda.Language),
		graphson.WithHostLanguages(c.Lambda.HostLanguages...),
	}
	keys := make([]string, 0, len(c.Aliases))
	for k := range c.Aliases {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, custom := range keys {
		opts = append(opts, graphson.WithTagAlias(custom, c.Aliases[custom]))
	}
	return opts
}
