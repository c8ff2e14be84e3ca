package appcore

import "context"

// UseCase is the base interface for all use cases.
// TCommand is the typed input, TResult the typed output. Implementations are
// stateless across calls apart from dependencies injected at construction and
// must be safe for concurrent use.
type UseCase[TCommand any, TResult any] interface {
	// Execute runs the use case with the given command.
	Execute(ctx context.Context, cmd TCommand) (TResult, error)
}

// Command is the marker interface for commands (state-changing inputs).
type Command interface {
	CommandName() string
}

// Query is the marker interface for queries (read-only inputs).
type Query interface {
	QueryName() string
}

// Validator validates a command before execution.
type Validator[T any] interface {
	// Validate checks the command for well-formedness.
	Validate(cmd T) error
}
