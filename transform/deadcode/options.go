package deadcode

import "log/slog"

// Options configures Eliminate.
type Options struct {
	// Logger receives a Debug record for every rewrite. Nil discards them.
	Logger *slog.Logger
	// MaxIterations caps the number of fixpoint iterations. Zero runs
	// until nothing changes.
	MaxIterations int
}

func DefaultOptions() Options {
	return Options{}
}

// Stats counts the rewrites performed by a run of Eliminate.
type Stats struct {
	Inlined                int
	DeclarationsRemoved    int
	ConditionsFolded       int
	StatementsPruned       int
	ConditionalsNormalized int
	Iterations             int
}

// Changes returns the total number of rewrites.
func (s Stats) Changes() int {
	return s.Inlined + s.DeclarationsRemoved + s.ConditionsFolded + s.StatementsPruned + s.ConditionalsNormalized
}

// Add accumulates the counters of other into s.
func (s *Stats) Add(other Stats) {
	s.Inlined += other.Inlined
	s.DeclarationsRemoved += other.DeclarationsRemoved
	s.ConditionsFolded += other.ConditionsFolded
	s.StatementsPruned += other.StatementsPruned
	s.ConditionalsNormalized += other.ConditionalsNormalized
	s.Iterations += other.Iterations
}

// PassInfo describes a transform to a host pipeline.
type PassInfo struct {
	Name         string
	Group        string
	Experimental bool
}

// Pass registers Eliminate with a host scheduler. It runs in the group of
// builtin passes that precede the main optimization stage.
var Pass = PassInfo{
	Name:         "dead-code-elimination",
	Group:        "builtin-pre",
	Experimental: true,
}
