package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	bignumber "github.com/Ask4r/BigNumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its output streams.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	td := []struct {
		name string
		args []string
		want string
	}{
		{"pi", []string{"pi", "--digits", "20"}, "3.14159265358979323846\n"},
		{"pi bbp", []string{"pi", "-m", "bbp", "--digits", "20"}, "3.14159265358979323846\n"},
		{"pi gauss", []string{"pi", "--method", "gauss", "--digits", "20", "--prec", "256"}, "3.14159265358979323846\n"},
		{"sqrt", []string{"sqrt", "2", "--digits", "10", "--prec", "128"}, "1.4142135624\n"},
		{"sqrt exact", []string{"sqrt", "0.25"}, "0.5\n"},
		{"atan", []string{"atan", "1", "--digits", "15"}, "0.785398163397448\n"},
		{"pow", []string{"pow", "2", "100"}, "1267650600228229401496703205376\n"},
		{"pow fraction", []string{"pow", "1.5", "3"}, "3.375\n"},
		{"factorial", []string{"factorial", "20"}, "2432902008176640000\n"},
		{"add", []string{"calc", "1.5", "+", "2.25"}, "3.75\n"},
		{"sub", []string{"calc", "1", "-", "2.5"}, "-1.5\n"},
		{"mul", []string{"calc", "1.5", "x", "4"}, "6\n"},
		{"quo", []string{"calc", "1", "/", "4"}, "0.25\n"},
		{"quo digits", []string{"calc", "--digits", "4", "2", "/", "3"}, "0.6667\n"},
		{"negative operand", []string{"calc", "--", "-3", "*", "-3"}, "9\n"},
		{"cmp", []string{"calc", "2", "cmp", "3"}, "-1\n"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			out, _, err := run(t, d.args...)
			require.NoError(t, err)
			assert.Equal(t, d.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "sqrt", "--", "-4")
	assert.ErrorIs(t, err, bignumber.ErrNegativeSqrt)

	_, _, err = run(t, "calc", "1", "/", "0")
	assert.ErrorIs(t, err, bignumber.ErrDivisionByZero)

	_, _, err = run(t, "sqrt", "abc")
	assert.ErrorIs(t, err, bignumber.ErrSyntax)

	_, _, err = run(t, "calc", "1", "%", "2")
	assert.ErrorContains(t, err, "unknown operator")

	_, _, err = run(t, "pi", "--method", "monte-carlo")
	assert.ErrorContains(t, err, "unknown method")

	_, _, err = run(t, "pow", "2", "1.5")
	assert.ErrorContains(t, err, "invalid exponent")

	_, _, err = run(t, "sqrt")
	assert.Error(t, err)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "pi")
	assert.ErrorContains(t, err, "reading config")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("BIGNUMBER_DIGITS", "5")
	out, _, err := run(t, "pi")
	require.NoError(t, err)
	assert.Equal(t, "3.14159\n", out)

	// flags take precedence
	out, _, err = run(t, "pi", "--digits", "2")
	require.NoError(t, err)
	assert.Equal(t, "3.14\n", out)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bignumber.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("prec: 128\ndigits: 3\n"), 0o600))
	out, _, err := run(t, "--config", cfg, "sqrt", "2")
	require.NoError(t, err)
	assert.Equal(t, "1.414\n", out)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "pi", "--prec", "128")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "method=machin")
	assert.Contains(t, stderr, "prec=128")

	_, stderr, err = run(t, "pi", "--prec", "128")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
