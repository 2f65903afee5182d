package testhelpers

import (
	"context"

	"gitstack.dev/gitstack/internal/github"
)

// MockRequests is a scripted change-request service
type MockRequests struct {
	Statuses    map[string]github.Status
	StatusErrs  map[string]error
	Created     []github.CreateOptions
	BaseUpdates map[int]string
}

// NewMockRequests creates an empty mock: every branch reports no request
func NewMockRequests() *MockRequests {
	return &MockRequests{
		Statuses:    make(map[string]github.Status),
		StatusErrs:  make(map[string]error),
		BaseUpdates: make(map[int]string),
	}
}

func (m *MockRequests) StatusFor(_ context.Context, branch string) (github.Status, error) {
	if err := m.StatusErrs[branch]; err != nil {
		return github.Status{}, err
	}
	return m.Statuses[branch], nil
}

func (m *MockRequests) Create(_ context.Context, opts github.CreateOptions) (github.Status, error) {
	m.Created = append(m.Created, opts)
	number := 100 + len(m.Created)
	status := github.Status{
		State:  github.StateOpen,
		Draft:  opts.Draft,
		Number: number,
		Base:   opts.Base,
	}
	m.Statuses[opts.Head] = status
	return status, nil
}

func (m *MockRequests) UpdateBase(_ context.Context, number int, base string) error {
	m.BaseUpdates[number] = base
	return nil
}
