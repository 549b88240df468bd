package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/process"
)

const sampleProgram = `
[[source]]
op = "withStrategies"
args = [{ strategy = "ReadOnlyStrategy" }]

[[step]]
op = "V"

[[step]]
op = "has"
args = ["age", { predicate = "gt", value = 30 }]
`

func TestParseProgram(t *testing.T) {
	bc, err := parseProgram([]byte(sampleProgram))
	if err != nil {
		t.Fatalf("parseProgram: %v", err)
	}
	if len(bc.SourceInstructions) != 1 || len(bc.StepInstructions) != 2 {
		t.Fatalf("instructions = %d/%d, want 1/2", len(bc.SourceInstructions), len(bc.StepInstructions))
	}
	s, ok := bc.SourceInstructions[0].Arguments[0].(process.TraversalStrategy)
	if !ok || s.Name != "ReadOnlyStrategy" {
		t.Errorf("source argument = %#v", bc.SourceInstructions[0].Arguments[0])
	}
	p, ok := bc.StepInstructions[1].Arguments[1].(process.P)
	if !ok || p.Operator != "gt" || p.Value != int64(30) {
		t.Errorf("has argument = %#v", bc.StepInstructions[1].Arguments[1])
	}
}

func TestConvertArg(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		check func(t *testing.T, v any)
	}{
		{
			name: "between predicate",
			in:   map[string]any{"predicate": "between", "value": int64(1), "other": int64(5)},
			check: func(t *testing.T, v any) {
				if p, ok := v.(process.P); !ok || p.Other != int64(5) {
					t.Errorf("got %#v", v)
				}
			},
		},
		{
			name: "binding",
			in:   map[string]any{"binding": "x", "value": "marko"},
			check: func(t *testing.T, v any) {
				if b, ok := v.(process.Binding); !ok || b.Key != "x" || b.Value != "marko" {
					t.Errorf("got %#v", v)
				}
			},
		},
		{
			name: "enum by wire name",
			in:   map[string]any{"enum": "Scope", "name": "global"},
			check: func(t *testing.T, v any) {
				if v != process.ScopeGlobal {
					t.Errorf("got %#v, want ScopeGlobal", v)
				}
			},
		},
		{
			name: "lambda",
			in:   map[string]any{"lambda": "it.get()", "arity": int64(0)},
			check: func(t *testing.T, v any) {
				if l, ok := v.(process.Lambda); !ok || l.Script != "it.get()" || l.Arity != 0 {
					t.Errorf("got %#v", v)
				}
			},
		},
		{
			name: "anonymous traversal",
			in:   map[string]any{"traversal": []any{map[string]any{"op": "out", "args": []any{"knows"}}}},
			check: func(t *testing.T, v any) {
				tr, ok := v.(*process.GraphTraversal)
				if !ok || len(tr.Bytecode().StepInstructions) != 1 {
					t.Errorf("got %#v", v)
				}
			},
		},
		{
			name: "plain table",
			in:   map[string]any{"a": []any{map[string]any{"predicate": "eq", "value": "x"}}},
			check: func(t *testing.T, v any) {
				m, ok := v.(map[string]any)
				if !ok {
					t.Fatalf("got %#v", v)
				}
				if _, ok := m["a"].([]any)[0].(process.P); !ok {
					t.Errorf("nested predicate not converted: %#v", m["a"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := convertArg(tt.in)
			if err != nil {
				t.Fatalf("convertArg: %v", err)
			}
			tt.check(t, v)
		})
	}
}

func TestParseProgramErrors(t *testing.T) {
	tests := []struct {
		name    string
		program string
	}{
		{"syntax", "[[step]\nop = 1"},
		{"missing op", "[[step]]\nargs = [1]"},
		{"unknown key", "[[step]]\nop = \"V\"\nargz = [1]"},
		{"unknown enum", "[[step]]\nop = \"order\"\nargs = [{ enum = \"Order\", name = \"sideways\" }]"},
		{"empty predicate", "[[step]]\nop = \"is\"\nargs = [{ predicate = \"\", value = 1 }]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProgram([]byte(tt.program))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestBytecodeCommand(t *testing.T) {
	out, err := runCLI(t, sampleProgram, "bytecode")
	if err != nil {
		t.Fatalf("bytecode: %v", err)
	}
	want := `{"@type":"g:Bytecode","@value":{` +
		`"source":[["withStrategies",{"@type":"g:ReadOnlyStrategy","@value":{}}]],` +
		`"step":[["V"],["has","age",{"@type":"g:P","@value":{"predicate":"gt","value":{"@type":"g:Int64","@value":30}}}]]}}`
	if strings.TrimSpace(out) != want {
		t.Errorf("output:\n%s\nwant:\n%s", out, want)
	}
}
