package cmd

import (
	"fmt"
	"strconv"
	"time"

	bignumber "github.com/Ask4r/BigNumber"
	"github.com/Ask4r/BigNumber/context"
	bmath "github.com/Ask4r/BigNumber/math"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var piMethods = map[string]func(z *bignumber.BigNumber) (*bignumber.BigNumber, error){
	"machin": bmath.Pi,
	"bbp":    bmath.PiBBP,
	"gauss":  bmath.PiGaussLegendre,
}

func newPiCmd(o *options) *cobra.Command {
	var method string
	c := &cobra.Command{
		Use:   "pi",
		Short: "Print π",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := piMethods[method]
			if !ok {
				return fmt.Errorf("unknown method %q", method)
			}
			start := time.Now()
			z, err := f(bignumber.New(o.prec()))
			if err != nil {
				return err
			}
			o.log.WithFields(logrus.Fields{
				"method":  method,
				"prec":    z.Prec(),
				"elapsed": time.Since(start),
			}).Debug("computed π")
			return o.print(cmd, z)
		},
	}
	c.Flags().StringVarP(&method, "method", "m", "machin", "algorithm: machin, bbp or gauss")
	return c
}

// unary returns a command applying op to its single argument.
func unary(o *options, use, short string, op func(ctx *context.Context, z, x *bignumber.BigNumber) *bignumber.BigNumber) *cobra.Command {
	return &cobra.Command{
		Use:   use + " X",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := o.context()
			x, err := o.parse(ctx, args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			z := op(ctx, ctx.New(), x)
			if err = ctx.Err(); err != nil {
				return fmt.Errorf("%s %s: %w", use, args[0], err)
			}
			o.log.WithFields(logrus.Fields{
				"op":      use,
				"prec":    ctx.Prec(),
				"elapsed": time.Since(start),
			}).Debug("evaluated")
			return o.print(cmd, z)
		},
	}
}

func newSqrtCmd(o *options) *cobra.Command {
	return unary(o, "sqrt", "Print the square root of X", (*context.Context).Sqrt)
}

func newAtanCmd(o *options) *cobra.Command {
	return unary(o, "atan", "Print the arctangent of X", (*context.Context).Atan)
}

func newFactorialCmd(o *options) *cobra.Command {
	return unary(o, "factorial", "Print X!", (*context.Context).Factorial)
}

func newPowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pow X N",
		Short: "Print X raised to the non-negative integer power N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := o.context()
			x, err := o.parse(ctx, args[0])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid exponent: %w", err)
			}
			z := ctx.Pow(ctx.New(), x, n)
			if err = ctx.Err(); err != nil {
				return err
			}
			return o.print(cmd, z)
		},
	}
}
