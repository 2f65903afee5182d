// Package github talks to the remote change-request service. The engine only
// sees the Client interface and the small Status projection; the go-github
// implementation lives in client_real.go.
package github

import (
	"context"
)

// State is the lifecycle state of a branch's change request
type State int

const (
	// StateNone indicates no request has been filed for the branch
	StateNone State = iota
	// StateOpen indicates an open request (possibly draft)
	StateOpen
	// StateMerged indicates the request was merged
	StateMerged
	// StateClosed indicates the request was closed without merging
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateOpen:
		return "open"
	case StateMerged:
		return "merged"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Status is the per-branch projection of the remote change request
type Status struct {
	State  State
	Draft  bool
	Number int
	Base   string
	URL    string
}

// CreateOptions contains the fields for filing a new change request
type CreateOptions struct {
	Head  string
	Base  string
	Title string
	Body  string
	Draft bool
}

// Client is the interface for change-request operations
type Client interface {
	// StatusFor returns the request status for a branch. A branch with no
	// request returns Status{State: StateNone}, not an error.
	StatusFor(ctx context.Context, branch string) (Status, error)

	// Create files a new change request and returns its status
	Create(ctx context.Context, opts CreateOptions) (Status, error)

	// UpdateBase re-targets an existing request at a new base branch
	UpdateBase(ctx context.Context, number int, base string) error
}
