// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/powcalc/powcalc/internal/boundary"
	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/pkg/types"

	"github.com/spf13/cobra"
)

func newPowCommand(app *App) *cobra.Command {
	var digitsOnly bool

	powCmd := &cobra.Command{
		Use:   "pow BASE EXPONENT",
		Short: "Print BASE raised to EXPONENT exactly",
		Long: `Print BASE raised to EXPONENT using the arbitrary-precision engine.

BASE must be positive and EXPONENT non-negative. Exponents above
limits.max_exponent are rejected.`,
		Example: `  powcalc pow 2 10
  powcalc pow 3 50
  powcalc pow 2 100000 --digits-only`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return app.report(operandError(&types.InvalidPositiveIntError{Input: args[0]}, args[0], args[1]))
			}
			exponent, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return app.report(operandError(&types.InvalidPositiveIntError{Input: args[1]}, args[0], args[1]))
			}

			calc := app.calculator(nil)
			if digitsOnly {
				n, err := calc.DigitCount(base, exponent)
				if err != nil {
					return app.report(operandError(err, args[0], args[1]))
				}
				fmt.Fprintln(app.stdout, n)
				return nil
			}

			result, err := calc.Exact(base, exponent)
			if err != nil {
				return app.report(operandError(err, args[0], args[1]))
			}
			fmt.Fprintln(app.stdout, result)
			return nil
		},
	}

	powCmd.Flags().BoolVar(&digitsOnly, "digits-only", false, "print only the number of decimal digits")
	return powCmd
}

// operandError wraps a rejected operand pair as an actionable error with the
// invalid-input exit code.
func operandError(err error, base, exponent string) error {
	id := issue.InvalidOperandsId
	suggestion := "Use a positive base and a non-negative exponent, e.g. 'powcalc pow 2 10'"
	if errors.Is(err, boundary.ErrExponentTooLarge) {
		id = issue.ExponentTooLargeId
		suggestion = "Raise limits.max_exponent in the config file or set POWCALC_LIMITS_MAX_EXPONENT=0"
	}
	return &ExitError{
		Code: types.ExitInvalidInput,
		Err: issue.NewErrorContext().
			WithOperation("compute power").
			WithResource(base + " ^ " + exponent).
			WithIssue(id).
			WithSuggestion(suggestion).
			Wrap(err).
			BuildError(),
	}
}
