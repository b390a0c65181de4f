package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formguard/pkg/binder"
)

// ErrLintFailed is returned when a document has configuration errors.
var ErrLintFailed = errors.New("lint failed")

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Check a forms file for configuration errors",
		Long: `Binds every form of the file against the rule registry and prints each
declaration that cannot be bound, such as "minLength" without a number.
Exits non-zero when any error is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadApp()
			if err != nil {
				return err
			}
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			b, err := newBinder(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bindErr := b.BindAll(doc)
			fieldErrs := binder.FieldErrors(bindErr)
			for _, fe := range fieldErrs {
				fmt.Fprintf(out, "%s: %s.%s: %v\n", args[0], fe.Form, fe.Field, fe.Err)
			}
			if bindErr != nil && len(fieldErrs) == 0 {
				fmt.Fprintf(out, "%s: %v\n", args[0], bindErr)
			}
			if bindErr != nil {
				return fmt.Errorf("%w: %s", ErrLintFailed, args[0])
			}

			fields := 0
			for _, f := range b.Forms() {
				fields += len(f.Fields())
			}
			fmt.Fprintf(out, "%s: %d forms, %d fields, ok\n", args[0], len(b.Forms()), fields)
			return nil
		},
	}
}
