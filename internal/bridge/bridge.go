// Package bridge is the core's only path to the host process: named
// commands with JSON arguments, one JSON result or an error. Views never
// talk to storage, the filesystem, or the PDF writer directly.
package bridge

import (
	"context"
	"encoding/json"
)

// Invoker executes one named command against the host.
type Invoker interface {
	Invoke(ctx context.Context, command string, args any, out any) error
}

// Error is a boundary failure: the host rejected the command. It is
// surfaced to the user verbatim as a transient notification and never
// retried automatically.
type Error struct {
	Command string
	Message string
}

func (e *Error) Error() string {
	return e.Command + ": " + e.Message
}

// Dispatcher is the host-side entry point a LocalInvoker drives. The
// desktop binary runs views and host in one process, so no HTTP hop is
// needed there.
type Dispatcher interface {
	Dispatch(ctx context.Context, command string, args json.RawMessage) (any, error)
}

// LocalInvoker routes commands to an in-process dispatcher. Arguments and
// results still round-trip through JSON so in-process and HTTP behavior
// stay identical.
type LocalInvoker struct {
	dispatcher Dispatcher
}

func NewLocalInvoker(d Dispatcher) *LocalInvoker {
	return &LocalInvoker{dispatcher: d}
}

func (l *LocalInvoker) Invoke(ctx context.Context, command string, args any, out any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return &Error{Command: command, Message: err.Error()}
	}

	result, err := l.dispatcher.Dispatch(ctx, command, raw)
	if err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	if out == nil {
		return nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return &Error{Command: command, Message: err.Error()}
	}
	return nil
}
