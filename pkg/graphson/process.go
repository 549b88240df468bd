package graphson

import (
	"slices"
	"strings"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/process"
)

// Process wire type names.
const (
	BytecodeType  = "Bytecode"
	PType         = "P"
	BindingType   = "Binding"
	LambdaType    = "Lambda"
	TraverserType = "Traverser"
)

// bytecodeSerializer serves Bytecode values and any Traversal. Empty
// instruction lists are left out of the payload.
var bytecodeSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	var bc *process.Bytecode
	switch x := v.(type) {
	case process.Bytecode:
		bc = &x
	case process.Traversal:
		bc = x.Bytecode()
	}
	if bc == nil {
		return TypedValue(BytecodeType, Mapping{}), nil
	}

	f := w.fields()
	if len(bc.SourceInstructions) > 0 {
		source, err := instructions(w, bc.SourceInstructions)
		if err != nil {
			return nil, err
		}
		f.raw("source", source)
	}
	if len(bc.StepInstructions) > 0 {
		step, err := instructions(w, bc.StepInstructions)
		if err != nil {
			return nil, err
		}
		f.raw("step", step)
	}
	return f.envelope(BytecodeType)
})

func instructions(w *Writer, insts []process.Instruction) (Sequence, error) {
	out := make(Sequence, 0, len(insts))
	for _, inst := range insts {
		seq := make(Sequence, 0, len(inst.Arguments)+1)
		seq = append(seq, Scalar{V: inst.Operator})
		for _, arg := range inst.Arguments {
			n, err := w.ToTree(arg)
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
		}
		out = append(out, seq)
	}
	return out, nil
}

// strategySerializer tags a strategy with its own name.
var strategySerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	s := v.(process.Strategy)
	name := s.StrategyName()
	if err := errors.ValidateTypeName(name); err != nil {
		return nil, &UnsupportedTypeError{Value: v, Reason: err.Error()}
	}
	config := s.StrategyConfiguration()
	if config == nil {
		return TypedValue(name, Mapping{}), nil
	}
	n, err := w.ToTree(config)
	if err != nil {
		return nil, err
	}
	return TypedValue(name, n), nil
})

var pSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	p := v.(process.P)
	f := w.fields().raw("predicate", Scalar{V: p.Operator})
	if p.Other == nil {
		f.add("value", p.Value)
	} else {
		f.add("value", []any{p.Value, p.Other})
	}
	return f.envelope(PType)
})

var bindingSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	b := v.(process.Binding)
	return w.fields().
		raw("key", Scalar{V: b.Key}).
		add("value", b.Value).
		envelope(BindingType)
})

// enumSerializer writes both the enum type and member through the alias table.
var enumSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	e := v.(process.Enum)
	return TypedValue(w.aliases.Wire(e.EnumType()), Scalar{V: w.aliases.Wire(e.EnumName())}), nil
})

// lambdaSerializer never evaluates the script. Host-language lambdas carry
// their declared arity and a "lambda " prefix; others send -1.
var lambdaSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	l := v.(process.Lambda)
	language := l.Language
	if language == "" {
		language = w.lambdaLanguage
		w.logger.Debug("lambda has no language, using default", "language", language)
	}

	script := l.Script
	arguments := -1
	if slices.Contains(w.hostLanguages, language) {
		if !strings.HasPrefix(strings.TrimSpace(script), "lambda") {
			script = "lambda " + script
		}
		arguments = l.Arity
	}
	return w.fields().
		raw("script", Scalar{V: script}).
		raw("language", Scalar{V: language}).
		raw("arguments", Scalar{V: arguments}).
		envelope(LambdaType)
})

var traverserSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	t := v.(process.Traverser)
	return w.fields().
		add("value", t.Object).
		add("bulk", t.Bulk).
		envelope(TraverserType)
})

func deserializeTraverser(r *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, TraverserType)
	m, err := object(tag, payload)
	if err != nil {
		return nil, err
	}
	value, err := r.required(tag, m, "value")
	if err != nil {
		return nil, err
	}
	rawBulk, err := r.required(tag, m, "bulk")
	if err != nil {
		return nil, err
	}
	bulk, ok := asInt64(rawBulk)
	if !ok {
		return nil, badField(tag, "bulk", "must be an integer")
	}
	return process.Traverser{Object: value, Bulk: bulk}, nil
}

// enumDeserializer decodes members of one enum type, mapping the wire name
// back through the reader's alias table.
func enumDeserializer(enumType string) DeserializerFunc {
	return func(r *Reader, payload Node) (any, error) {
		tag := FormatTag(DefaultPrefix, r.aliases.Wire(enumType))
		s, ok := payload.(Scalar)
		if !ok {
			return nil, badField(tag, "", "payload must be a string")
		}
		name, ok := s.V.(string)
		if !ok {
			return nil, badField(tag, "", "payload must be a string")
		}
		e, ok := process.ParseEnum(enumType, r.aliases.Host(name))
		if !ok {
			return nil, badField(tag, "", "unknown member "+name)
		}
		return e, nil
	}
}
