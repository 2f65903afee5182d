package helpers

import (
	"github.com/spf13/cobra"

	"gitstack.dev/gitstack/internal/runtime"
)

// Run provides a runtime context to a command's execution function and, on
// success, flushes the registry if it was mutated. A failed operation leaves
// the persisted state untouched.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()

	if err := fn(ctx); err != nil {
		return err
	}
	return ctx.Engine.Wrapup()
}
