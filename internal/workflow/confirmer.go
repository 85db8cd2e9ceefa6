package workflow

import "context"

// PromptKind classifies a user-facing prompt.
type PromptKind string

const (
	PromptQuestion PromptKind = "question"
	PromptWarning  PromptKind = "warning"
	PromptSuccess  PromptKind = "success"
	PromptError    PromptKind = "error"
)

// Prompt is what a confirmer shows the user.
type Prompt struct {
	Kind  PromptKind
	Title string
	Text  string
}

// Confirmer gates mutations behind user approval and carries one-way
// notices back to the user. Confirm blocks until the user answers.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
	Notify(ctx context.Context, prompt Prompt)
}

// AutoConfirmer answers every prompt with a fixed verdict. Useful for
// scripted runs and tests.
type AutoConfirmer struct {
	Approve bool
	Notices []Prompt
}

// Confirm returns the fixed verdict.
func (a *AutoConfirmer) Confirm(_ context.Context, _ Prompt) (bool, error) {
	return a.Approve, nil
}

// Notify records the notice.
func (a *AutoConfirmer) Notify(_ context.Context, prompt Prompt) {
	a.Notices = append(a.Notices, prompt)
}
