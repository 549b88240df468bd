package process

import (
	"fmt"
	"strings"
)

// Instruction is one operation of a traversal program with its arguments.
type Instruction struct {
	Operator  string
	Arguments []any
}

func (i Instruction) String() string {
	parts := make([]string, 0, len(i.Arguments)+1)
	parts = append(parts, i.Operator)
	for _, a := range i.Arguments {
		parts = append(parts, fmt.Sprint(a))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Bytecode is a traversal program split into source and step instructions.
type Bytecode struct {
	SourceInstructions []Instruction
	StepInstructions   []Instruction
}

// NewBytecode returns an empty program.
func NewBytecode() *Bytecode {
	return &Bytecode{}
}

// AddSource appends a source instruction.
func (b *Bytecode) AddSource(op string, args ...any) *Bytecode {
	b.SourceInstructions = append(b.SourceInstructions, Instruction{Operator: op, Arguments: args})
	return b
}

// AddStep appends a step instruction.
func (b *Bytecode) AddStep(op string, args ...any) *Bytecode {
	b.StepInstructions = append(b.StepInstructions, Instruction{Operator: op, Arguments: args})
	return b
}

// Bytecode returns b itself so that *Bytecode satisfies [Traversal].
func (b *Bytecode) Bytecode() *Bytecode { return b }

// Clone returns a deep copy of the instruction lists. Arguments are shared.
func (b *Bytecode) Clone() *Bytecode {
	out := &Bytecode{
		SourceInstructions: make([]Instruction, len(b.SourceInstructions)),
		StepInstructions:   make([]Instruction, len(b.StepInstructions)),
	}
	for i, inst := range b.SourceInstructions {
		out.SourceInstructions[i] = Instruction{Operator: inst.Operator, Arguments: append([]any(nil), inst.Arguments...)}
	}
	for i, inst := range b.StepInstructions {
		out.StepInstructions[i] = Instruction{Operator: inst.Operator, Arguments: append([]any(nil), inst.Arguments...)}
	}
	return out
}

func (b *Bytecode) String() string {
	var sb strings.Builder
	for _, inst := range b.SourceInstructions {
		sb.WriteString(inst.String())
	}
	for _, inst := range b.StepInstructions {
		sb.WriteString(inst.String())
	}
	return sb.String()
}
