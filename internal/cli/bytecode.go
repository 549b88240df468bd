package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/graphson"
	"github.com/matzehuels/graphson/pkg/process"
)

// program is a traversal written in TOML:
//
//	[[source]]
//	op = "withStrategies"
//	args = [{ strategy = "ReadOnlyStrategy" }]
//
//	[[step]]
//	op = "has"
//	args = ["age", { predicate = "gt", value = 30 }]
//
// Inline tables with one of the keys predicate, strategy, binding, enum,
// lambda, or traversal become the matching process values. Other tables
// stay plain maps.
type program struct {
	Source []instruction `toml:"source"`
	Step   []instruction `toml:"step"`
}

type instruction struct {
	Op   string `toml:"op"`
	Args []any  `toml:"args"`
}

func (c *CLI) bytecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bytecode [file.toml]",
		Short: "Build a traversal from TOML and print its GraphSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.readInput(args)
			if err != nil {
				return err
			}
			bc, err := parseProgram(data)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("parsed program",
				"sources", len(bc.SourceInstructions), "steps", len(bc.StepInstructions))

			w, _, err := c.newCodec()
			if err != nil {
				return err
			}
			out, err := w.WriteObject(bc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, out)
			return err
		},
	}
}

// parseProgram decodes TOML program text into bytecode.
func parseProgram(data []byte) (*process.Bytecode, error) {
	var p program
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse program")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown program key %q", undecoded[0].String())
	}

	bc := process.NewBytecode()
	for _, in := range p.Source {
		args, err := convertArgs(in)
		if err != nil {
			return nil, err
		}
		bc.AddSource(in.Op, args...)
	}
	for _, in := range p.Step {
		args, err := convertArgs(in)
		if err != nil {
			return nil, err
		}
		bc.AddStep(in.Op, args...)
	}
	return bc, nil
}

func convertArgs(in instruction) ([]any, error) {
	if in.Op == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "instruction without op")
	}
	args := make([]any, len(in.Args))
	for i, a := range in.Args {
		v, err := convertArg(a)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", in.Op, i, err)
		}
		args[i] = v
	}
	return args, nil
}

// convertArg turns TOML values into traversal arguments.
func convertArg(v any) (any, error) {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			conv, err := convertArg(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(x))
		for i, item := range x {
			conv, err := convertArg(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case map[string]any:
		return convertTable(x)
	default:
		return v, nil
	}
}

func convertTable(m map[string]any) (any, error) {
	switch {
	case m["predicate"] != nil:
		op, err := stringField(m, "predicate")
		if err != nil {
			return nil, err
		}
		value, err := convertArg(m["value"])
		if err != nil {
			return nil, err
		}
		if other, ok := m["other"]; ok {
			o, err := convertArg(other)
			if err != nil {
				return nil, err
			}
			return process.NewP(op, value, o), nil
		}
		return process.NewP(op, value), nil

	case m["strategy"] != nil:
		name, err := stringField(m, "strategy")
		if err != nil {
			return nil, err
		}
		var config map[string]any
		if raw, ok := m["config"].(map[string]any); ok {
			config = make(map[string]any, len(raw))
			for k, cv := range raw {
				conv, err := convertArg(cv)
				if err != nil {
					return nil, err
				}
				config[k] = conv
			}
		}
		return process.NewStrategy(name, config), nil

	case m["binding"] != nil:
		key, err := stringField(m, "binding")
		if err != nil {
			return nil, err
		}
		value, err := convertArg(m["value"])
		if err != nil {
			return nil, err
		}
		return process.Bind(key, value), nil

	case m["enum"] != nil:
		enumType, err := stringField(m, "enum")
		if err != nil {
			return nil, err
		}
		name, err := stringField(m, "name")
		if err != nil {
			return nil, err
		}
		e, ok := process.ParseEnum(enumType, graphson.DefaultAliases.Host(name))
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown %s value %q", enumType, name)
		}
		return e, nil

	case m["lambda"] != nil:
		script, err := stringField(m, "lambda")
		if err != nil {
			return nil, err
		}
		arity := 1
		if a, ok := m["arity"].(int64); ok {
			arity = int(a)
		}
		lang, _ := m["language"].(string)
		return process.NewLambdaIn(lang, script, arity), nil

	case m["traversal"] != nil:
		steps, ok := tables(m["traversal"])
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "traversal must be an array of tables")
		}
		t := process.NewGraphTraversal()
		for _, s := range steps {
			op, err := stringField(s, "op")
			if err != nil {
				return nil, err
			}
			raw, _ := s["args"].([]any)
			args, err := convertArgs(instruction{Op: op, Args: raw})
			if err != nil {
				return nil, err
			}
			t.Step(op, args...)
		}
		return t, nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		conv, err := convertArg(v)
		if err != nil {
			return nil, err
		}
		out[k] = conv
	}
	return out, nil
}

// tables accepts both inline arrays and arrays of tables.
func tables(v any) ([]map[string]any, bool) {
	switch x := v.(type) {
	case []map[string]any:
		return x, true
	case []any:
		out := make([]map[string]any, len(x))
		for i, item := range x {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func stringField(m map[string]any, key string) (string, error) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "%q must be a non-empty string", key)
	}
	return s, nil
}
