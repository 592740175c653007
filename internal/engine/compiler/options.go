// Released under an MIT license. See LICENSE.

package compiler

import (
	"io"
	"log/slog"

	"github.com/michaelmacinnis/slxi/internal/common/struct/binding"
)

// Option configures a compiler.
type Option func(*T)

// WithBindings makes the compiler read the values of global constants
// and macros through b. Dynamic bindings in b take precedence over
// global values.
func WithBindings(b *binding.T) Option {
	return func(c *T) {
		c.bindings = b
	}
}

// WithExpander sets the expander used for macro calls.
func WithExpander(e Expander) Option {
	return func(c *T) {
		c.expander = e
	}
}

// WithLogger sets the logger for compiler debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *T) {
		c.logger = l
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
