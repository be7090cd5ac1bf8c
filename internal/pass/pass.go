// Package pass defines the module-pass contract used by Prism's pipeline
// tools and a small sequential runner. Scheduling beyond a linear order is
// the host's business.
package pass

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/prism-lang/prism/internal/ir"
)

// ModulePass transforms a module in place and reports whether it changed it.
// Passes run one at a time against a module; no pass runs concurrently with
// another over the same function.
type ModulePass interface {
	Name() string
	Run(m *ir.Module) (bool, error)
}

// Runner executes passes in registration order against a single module.
type Runner struct {
	log    *zap.Logger
	passes []ModulePass
}

// NewRunner creates a runner; a nil logger disables logging.
func NewRunner(log *zap.Logger, passes ...ModulePass) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log, passes: passes}
}

// Run executes every registered pass and reports whether any changed the
// module. The first pass error aborts the run.
func (r *Runner) Run(m *ir.Module) (bool, error) {
	changed := false
	for _, p := range r.passes {
		c, err := p.Run(m)
		if err != nil {
			return changed, fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		r.log.Debug("pass complete",
			zap.String("pass", p.Name()),
			zap.Bool("changed", c))
		changed = changed || c
	}
	return changed, nil
}
