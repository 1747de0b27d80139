package cmd

import (
	"fmt"
	"strconv"

	bignumber "github.com/Ask4r/BigNumber"
	"github.com/Ask4r/BigNumber/context"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var calcOps = map[string]func(ctx *context.Context, z, x, y *bignumber.BigNumber) *bignumber.BigNumber{
	"+": (*context.Context).Add,
	"-": (*context.Context).Sub,
	"*": (*context.Context).Mul,
	"x": (*context.Context).Mul,
	"/": (*context.Context).Quo,
}

func newCalcCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc X OP Y",
		Short: "Evaluate a binary operation",
		Long: `Evaluate X OP Y where OP is one of + - * x / or cmp.

cmp prints -1, 0 or +1 as X is less than, equal to or greater than Y.
Negative operands must follow a -- argument.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := o.context()
			x, err := o.parse(ctx, args[0])
			if err != nil {
				return err
			}
			y, err := o.parse(ctx, args[2])
			if err != nil {
				return err
			}

			if args[1] == "cmp" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(x.Cmp(y)))
				return err
			}
			op, ok := calcOps[args[1]]
			if !ok {
				return fmt.Errorf("unknown operator %q", args[1])
			}
			z := op(ctx, ctx.New(), x, y)
			if err = ctx.Err(); err != nil {
				return fmt.Errorf("%s %s %s: %w", args[0], args[1], args[2], err)
			}
			o.log.WithFields(logrus.Fields{
				"op":   args[1],
				"prec": z.Prec(),
			}).Debug("evaluated")
			return o.print(cmd, z)
		},
	}
}
