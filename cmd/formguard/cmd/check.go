package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formguard/pkg/binder"
)

// ErrSubmissionBlocked is returned by check when a field is invalid.
var ErrSubmissionBlocked = errors.New("submission blocked")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> <form> [field=value...]",
		Short: "Validate a submission",
		Long: `Validates the given values as a submission of the form and prints the
verdict of every field in form order. Fields without a value are submitted
empty. Exits non-zero when the submission would be blocked.`,
		Example: `  formguard check forms.yaml contact name=Jane email=jane@acme.io phone=555-123-4567`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[2:])
			if err != nil {
				return err
			}
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
			if err := b.BindAll(doc); err != nil {
				return err
			}
			form, err := b.Form(args[1])
			if err != nil {
				return err
			}

			sub, err := form.NewSession().Submit(cmd.Context(), values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, fr := range sub.Result.Fields {
				if fr.Verdict.OK {
					fmt.Fprintf(out, "ok    %s\n", fr.Ref)
					continue
				}
				fmt.Fprintf(out, "FAIL  %s: %s (%s)\n", fr.Ref, fr.Verdict.Message, fr.Verdict.Rule)
			}

			if first, ok := sub.FirstInvalid(); ok {
				fmt.Fprintf(out, "blocked, first invalid field: %s\n", first)
				return ErrSubmissionBlocked
			}
			fmt.Fprintln(out, "allowed")
			return nil
		},
	}
}

func parseValues(pairs []string) (binder.Values, error) {
	values := make(binder.Values, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q: expected field=value", pair)
		}
		values[key] = value
	}
	return values, nil
}
