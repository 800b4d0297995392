// Package processtest provides an in-memory process.Executor for tests.
package processtest

import (
	"context"
	"strings"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// Response is what the fake returns for a matching call.
type Response struct {
	Output string
	Err    error
}

// Fake records every call and answers from canned responses keyed by args.
type Fake struct {
	// Default is returned for calls with no registered response.
	Default Response

	mu        sync.Mutex
	calls     []Call
	responses map[string]Response
}

// New returns an empty fake.
func New() *Fake {
	return &Fake{responses: make(map[string]Response)}
}

// On registers the response for an exact argument list.
func (f *Fake) On(args []string, output string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key(args)] = Response{Output: output, Err: err}
	return f
}

// Run implements process.Executor.
func (f *Fake) Run(_ context.Context, name string, args []string) error {
	return f.record(name, args).Err
}

// Output implements process.Executor.
func (f *Fake) Output(_ context.Context, name string, args []string) (string, error) {
	resp := f.record(name, args)
	return resp.Output, resp.Err
}

// Calls returns the recorded calls in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *Fake) record(name string, args []string) Response {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	if resp, ok := f.responses[key(args)]; ok {
		return resp
	}
	return f.Default
}

func key(args []string) string {
	return strings.Join(args, "\x00")
}
