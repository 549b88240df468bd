package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/graphson"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[lambda]
language = "gremlin-python"
host_languages = ["gremlin-python"]

[aliases]
"janusgraph:RelationIdentifier" = "g:Int64"

[server]
addr = ":9000"
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Lambda.Language != "gremlin-python" {
		t.Errorf("Language = %q", cfg.Lambda.Language)
	}
	if !slices.Equal(cfg.Lambda.HostLanguages, []string{"gremlin-python"}) {
		t.Errorf("HostLanguages = %v", cfg.Lambda.HostLanguages)
	}
	if cfg.Aliases["janusgraph:RelationIdentifier"] != "g:Int64" {
		t.Errorf("Aliases = %v", cfg.Aliases)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Lambda.Language != graphson.DefaultLambdaLanguage {
		t.Errorf("Language = %q", cfg.Lambda.Language)
	}
	if !slices.Equal(cfg.Lambda.HostLanguages, graphson.DefaultHostLanguages) {
		t.Errorf("HostLanguages = %v", cfg.Lambda.HostLanguages)
	}
	if cfg.Server.Addr != defaultAddr {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[lambda"},
		{"unknown key", "[lambda]\nlanguag = \"x\""},
		{"wrong type", "[lambda]\nhost_languages = 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := defaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "graphson", "graphson.toml"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lambda.Language = "gremlin-python"
	cfg.Aliases = map[string]string{"x:Count": "g:Int64"}

	r, err := graphson.NewReader(cfg.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	v, err := r.ReadObject(`{"@type":"x:Count","@value":3}`)
	if err != nil {
		t.Fatal(err)
	}
	if v != int64(3) {
		t.Errorf("ReadObject = %#v, want int64(3)", v)
	}
}

func TestLoadConfigDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("[server]\naddr = \":7000\"\n")
	if err := os.WriteFile(filepath.Join(dir, appName, configFile), data, 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, LogInfo)
	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Addr = %q, want :7000", cfg.Server.Addr)
	}
}
