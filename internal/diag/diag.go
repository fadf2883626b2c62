// Package diag collects the diagnostics reported by every stage of one
// compilation.
package diag

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/you-not-fish/tamc/internal/syntax"
)

// Collector is an append-only, ordered list of error messages. The zero
// value is ready to use. A Collector belongs to a single compilation and is
// not safe for concurrent use.
type Collector struct {
	msgs []string
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{}
}

// Add records msg verbatim.
func (c *Collector) Add(msg string) {
	if glog.V(3) {
		glog.V(3).Infof("diag: %s", msg)
	}
	c.msgs = append(c.msgs, msg)
}

// Addf records a message positioned at pos, formatted as "pos: message".
func (c *Collector) Addf(pos syntax.Pos, format string, args ...interface{}) {
	c.Add(fmt.Sprintf("%s: %s", pos, fmt.Sprintf(format, args...)))
}

// Handler returns an error handler that records into c; it is the bridge
// used by the scanner, the parser and the checker.
func (c *Collector) Handler() func(pos syntax.Pos, msg string) {
	return func(pos syntax.Pos, msg string) {
		c.Addf(pos, "%s", msg)
	}
}

// HasErrors reports whether any diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	return len(c.msgs) > 0
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	return len(c.msgs)
}

// Messages returns the recorded diagnostics in report order.
func (c *Collector) Messages() []string {
	out := make([]string, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Err folds the diagnostics into a single error, or returns nil if there are
// none.
func (c *Collector) Err() error {
	var result *multierror.Error
	for _, m := range c.msgs {
		result = multierror.Append(result, errors.New(m))
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = listFormat
	return result
}

func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := fmt.Sprintf("%d errors occurred:", len(errs))
	for _, err := range errs {
		msg += "\n\t" + err.Error()
	}
	return msg
}
