package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphson/pkg/errors"
)

// runCLI executes the root command with args and stdin, isolated from any
// user configuration.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	c := New(&stderr, log.InfoLevel)
	c.stdin = strings.NewReader(stdin)
	c.stdout = &stdout
	c.stderr = &stderr

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

const vertexDoc = `{"@type":"g:Vertex","@value":{"id":{"@type":"g:Int32","@value":1},"label":"person"}}`

func TestDecodeCommand(t *testing.T) {
	out, err := runCLI(t, vertexDoc, "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "v[1]\n" {
		t.Errorf("output = %q, want %q", out, "v[1]\n")
	}
}

func TestDecodeCommandList(t *testing.T) {
	out, err := runCLI(t, `[`+vertexDoc+`,"x"]`, "decode", "-")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "v[1]\nx\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDecodeCommandTyped(t *testing.T) {
	out, err := runCLI(t, vertexDoc, "decode", "--typed")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.TrimSpace(out) != vertexDoc {
		t.Errorf("output = %q, want %q", out, vertexDoc)
	}
}

func TestDecodeCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte(vertexDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "", "decode", path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "v[1]\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDecodeCommandInvalid(t *testing.T) {
	if _, err := runCLI(t, `{"a":`, "decode"); err == nil {
		t.Error("expected error for truncated JSON")
	}
	_, err := runCLI(t, "", "decode", filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestEncodeCommand(t *testing.T) {
	out, err := runCLI(t, `{"b":[1.5,true],"a":1}`, "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"a":{"@type":"g:Int64","@value":1},"b":[{"@type":"g:Double","@value":1.5},true]}`
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %s, want %s", out, want)
	}
}

func TestTagsCommand(t *testing.T) {
	out, err := runCLI(t, "", "tags", "--types")
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	for _, want := range []string{"g:Vertex", "g:Int32", "g:Scope", "process.Traversal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDotCommand(t *testing.T) {
	doc := `{"@type":"g:Edge","@value":{"id":7,"label":"knows","outV":1,"outVLabel":"person","inV":2,"inVLabel":"person"}}`
	out, err := runCLI(t, doc, "dot")
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	for _, want := range []string{"digraph G {", `"1" -> "2" [label="knows"];`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDotCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	if _, err := runCLI(t, vertexDoc, "dot", "-o", path); err != nil {
		t.Fatalf("dot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"1" [label="person\n1"];`) {
		t.Errorf("file = %s", data)
	}
}

func TestDotCommandBadFormat(t *testing.T) {
	if _, err := runCLI(t, vertexDoc, "dot", "--format", "png"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphson.toml")
	cfg := "[aliases]\n\"janusgraph:Id\" = \"g:Int64\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, `{"@type":"janusgraph:Id","@value":5}`, "--config", path, "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "5\n" {
		t.Errorf("output = %q, want %q", out, "5\n")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runCLI(t, "", "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "graphson") {
				t.Errorf("script does not mention graphson:\n%.200s", out)
			}
		})
	}
	if _, err := runCLI(t, "", "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "graphson version dev\n") {
		t.Errorf("output = %q", out)
	}
}
