package varstore

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name can be stored and referenced from scripts.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Store implements read2env.Sink using a map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	vars map[string]string
}

// New creates a new, empty store.
func New() *Store {
	return &Store{vars: make(map[string]string)}
}

// Set creates or overwrites name.
func (s *Store) Set(ctx context.Context, name, value string) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid variable name %q", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
	return nil
}

// Get returns the value of name and whether it is set.
func (s *Store) Get(ctx context.Context, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// Unset removes name. Removing an unset name is a no-op.
func (s *Store) Unset(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, name)
}

// Names returns all set names in sorted order.
func (s *Store) Names(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of every binding.
func (s *Store) All(ctx context.Context) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// EvalContext exposes the current bindings to HCL expressions as var.NAME.
func (s *Store) EvalContext(ctx context.Context) *hcl.EvalContext {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj := cty.EmptyObjectVal
	if len(s.vars) > 0 {
		attrs := make(map[string]cty.Value, len(s.vars))
		for k, v := range s.vars {
			attrs[k] = cty.StringVal(v)
		}
		obj = cty.ObjectVal(attrs)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": obj},
	}
}
