// Package solve defines the solver registry and the shared fold policy
// used by record-oriented puzzles. Each puzzle registers a Solver with
// its year, day, and the functions for both parts; the CLI looks
// solvers up here and never imports puzzle packages directly.
package solve

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Policy selects how a record-oriented solver treats malformed input
// units. Strict aborts the whole computation on the first malformed
// unit; Lenient skips malformed units and folds the rest. A malformed
// unit is never replaced by a default value under either policy.
type Policy int

const (
	// Strict propagates the first parse failure encountered.
	Strict Policy = iota

	// Lenient excludes unparseable units from the fold and continues.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a config or flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fmt.Errorf("unknown fold policy %q (want strict or lenient)", s)
	}
}

// Func computes one puzzle part from the raw input text and returns
// the rendered answer.
type Func func(input string) (string, error)

// Solver is one registered puzzle.
type Solver struct {
	Year  int
	Day   int
	Name  string
	Part1 Func
	Part2 Func
}

type key struct {
	year, day int
}

// Registry holds solvers keyed by year and day.
type Registry struct {
	mu      sync.RWMutex
	solvers map[key]*Solver
}

// NewRegistry returns an empty solver registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[key]*Solver)}
}

// Register adds a solver to the registry. Registering the same
// year/day twice is an error, as is a solver missing either part.
func (r *Registry) Register(s *Solver) error {
	if s == nil {
		return fmt.Errorf("cannot register a nil solver")
	}
	if s.Part1 == nil || s.Part2 == nil {
		return fmt.Errorf("solver for %d day %d is missing a part function", s.Year, s.Day)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{s.Year, s.Day}
	if _, exists := r.solvers[k]; exists {
		return fmt.Errorf("solver for %d day %d already registered", s.Year, s.Day)
	}
	r.solvers[k] = s
	return nil
}

// Lookup returns the solver for a year and day, if one is registered.
func (r *Registry) Lookup(year, day int) (*Solver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[key{year, day}]
	return s, ok
}

// Solvers returns all registered solvers ordered by year, then day.
func (r *Registry) Solvers() []*Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// Int64 adapts a part function returning int64 to the registry
// signature.
func Int64(fn func(string) (int64, error)) Func {
	return func(input string) (string, error) {
		v, err := fn(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	}
}

// Int adapts a part function returning int to the registry signature.
func Int(fn func(string) (int, error)) Func {
	return func(input string) (string, error) {
		v, err := fn(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}
}
