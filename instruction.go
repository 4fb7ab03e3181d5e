package scrollkit

import "strings"

// InstructionKind selects how an Instruction is applied.
type InstructionKind uint8

const (
	InstructionAssign InstructionKind = iota // Target.SetProperty(Name, Value)
	InstructionInvoke                        // Invoker.Invoke(Name, Position, Args)
)

func (k InstructionKind) String() string {
	if k == InstructionInvoke {
		return "invoke"
	}
	return "assign"
}

// Instruction is a single write emitted while rendering a tick. Instructions
// are collected for every tracker first and applied afterwards, so no write
// can influence a position read in the same tick.
type Instruction struct {
	Kind   InstructionKind
	Target Target
	Name   string

	// Assign
	Value string

	// Invoke
	Position Position
	Args     []string
}

// Apply performs the write. Invoking a target that does not implement
// Invoker does nothing.
func (in Instruction) Apply() {
	if in.Target == nil {
		return
	}
	switch in.Kind {
	case InstructionAssign:
		in.Target.SetProperty(in.Name, in.Value)
	case InstructionInvoke:
		if inv, ok := in.Target.(Invoker); ok {
			inv.Invoke(in.Name, in.Position, in.Args)
		}
	}
}

// InstructionSink receives every instruction after it has been applied.
type InstructionSink interface {
	EmitInstruction(in Instruction)
}

// splitArgs turns a rendered method template into call arguments.
func splitArgs(s string) []string {
	parts := strings.Split(s, ",")
	args := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			args = append(args, p)
		}
	}
	return args
}

// applyInstructions applies the batch in recorded order and forwards each
// instruction to sink when one is set.
func applyInstructions(batch []Instruction, sink InstructionSink) {
	for i := range batch {
		batch[i].Apply()
		if sink != nil {
			sink.EmitInstruction(batch[i])
		}
	}
}
