package cmd

import (
	"fmt"

	bignumber "github.com/Ask4r/BigNumber"
	"github.com/Ask4r/BigNumber/context"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables overriding flags, as in
// BIGNUMBER_PREC.
const envPrefix = "BIGNUMBER"

// options holds the state shared by all commands.
type options struct {
	cfgFile string
	v       *viper.Viper
	log     *logrus.Logger
}

// NewRootCmd returns the bignumber command with all its subcommands.
func NewRootCmd() *cobra.Command {
	o := &options{
		v:   viper.New(),
		log: logrus.New(),
	}

	root := &cobra.Command{
		Use:   "bignumber",
		Short: "Arbitrary precision binary arithmetic",
		Long: `bignumber evaluates numbers of arbitrary precision. Values are kept
in base 2**64 and truncated to --prec bits; results print exactly unless
--digits selects a number of fractional digits.

Every flag may also be set with a BIGNUMBER_<FLAG> environment variable or
in a config file given with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.init(cmd)
		},
	}

	o.registerFlags(root.PersistentFlags())
	root.AddCommand(
		newPiCmd(o),
		newSqrtCmd(o),
		newAtanCmd(o),
		newPowCmd(o),
		newFactorialCmd(o),
		newCalcCmd(o),
	)
	return root
}

// registerFlags registers the flags shared by all commands. Their values are
// read back through o.v, which also sees the environment and config file.
func (o *options) registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.cfgFile, "config", "", "config file (yaml, toml or json)")
	fs.Uint("prec", bignumber.DefaultPrec, "precision in bits")
	fs.Int("digits", -1, "fractional digits to print, -1 prints the exact value")
	fs.BoolP("verbose", "v", false, "log debug information to stderr")
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// init merges flags, environment and config file into o.v and sets up
// logging.
func (o *options) init(cmd *cobra.Command) error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.AutomaticEnv()
	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	if o.v.GetBool("verbose") {
		o.log.SetLevel(logrus.DebugLevel)
	}
	o.log.WithFields(logrus.Fields{
		"prec":   o.prec(),
		"digits": o.v.GetInt("digits"),
		"config": o.v.ConfigFileUsed(),
	}).Debug("configuration loaded")
	return nil
}

func (o *options) prec() uint {
	return o.v.GetUint("prec")
}

// context returns a precision context for the configured precision.
func (o *options) context() *context.Context {
	return context.New(o.prec())
}

// parse parses the command argument s at the configured precision.
func (o *options) parse(ctx *context.Context, s string) (*bignumber.BigNumber, error) {
	x, err := ctx.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, err)
	}
	return x, nil
}

// print writes x to the command output with the configured number of digits.
func (o *options) print(cmd *cobra.Command, x *bignumber.BigNumber) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), x.Text(o.v.GetInt("digits")))
	return err
}
