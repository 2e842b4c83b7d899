// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/internal/nativepow"
	"github.com/powcalc/powcalc/internal/prompt"
	"github.com/powcalc/powcalc/pkg/types"

	"github.com/spf13/cobra"
)

func newInteractiveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Ask for a name, a base and an exponent, then print the power",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(withContext(cmd.Context()), app)
		},
	}
}

func runInteractive(ctx context.Context, app *App) error {
	answers, err := app.promptSession().Ask(ctx)
	if err != nil {
		if errors.Is(err, prompt.ErrInputClosed) || errors.Is(err, prompt.ErrAborted) {
			return app.report(&ExitError{
				Code: types.ExitInvalidInput,
				Err: issue.NewErrorContext().
					WithOperation("read calculator input").
					WithIssue(issue.InvalidOperandsId).
					WithSuggestion("Enter a name made of letters, then two positive integers").
					Wrap(err).
					BuildError(),
			})
		}
		return err
	}

	base, exponent := answers.Base.Uint64(), answers.Exponent.Uint64()
	fmt.Fprintf(app.stdout, "\nHello, %s!\n", answers.Name)

	if v, ok := nativepow.Pow(base, exponent); ok {
		fmt.Fprintf(app.stdout, "%d ^ %d = %d\n", base, exponent, v)
		return nil
	}

	app.logger.Warn("result does not fit in 64 bits; computing it exactly", "base", base, "exponent", exponent)
	exact, err := app.calculator(nil).Exact(int64(answers.Base), int64(answers.Exponent))
	if err != nil {
		return app.report(operandError(err, answers.Base.String(), answers.Exponent.String()))
	}
	fmt.Fprintf(app.stdout, "%d ^ %d = %s\n", base, exponent, exact)
	return nil
}
