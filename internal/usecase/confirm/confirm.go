// Package confirm carries the interactive yes/no prompt that destructive and
// conflicting operations ask before writing.
package confirm

import "context"

type Confirmer interface {
	// Confirm shows message and reports whether staff accepted.
	Confirm(ctx context.Context, message string) bool
}

// Func adapts a plain function to Confirmer.
type Func func(ctx context.Context, message string) bool

func (f Func) Confirm(ctx context.Context, message string) bool {
	return f(ctx, message)
}

// Answer always replies with the same answer.
func Answer(yes bool) Confirmer {
	return Func(func(context.Context, string) bool { return yes })
}

// Recorder answers with a preset reply and keeps every prompt it saw.
type Recorder struct {
	Reply   bool
	Prompts []string
}

func (r *Recorder) Confirm(_ context.Context, message string) bool {
	r.Prompts = append(r.Prompts, message)
	return r.Reply
}
