// Command setop runs set algebra over YAML and JSON documents.
//
//	setop union a.yaml b.yaml
//	setop dedupe --format json config.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/homier/vecmap"
	"github.com/homier/vecmap/internal/setop"
)

func main() {
	os.Exit(Main())
}

// Main runs the setop tool and returns the code for passing to os.Exit.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setop",
		Short: "setop combines YAML and JSON sequences as sets.",
		Long: `setop reads sequences of scalars and combines them as sets.
Values keep the order of the first document they appear in.

Every file argument can be - for standard input. JSON input is
accepted wherever YAML is.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, op := range setop.Ops {
		cmd.AddCommand(newOpCmd(op))
	}
	cmd.AddCommand(newSubsetCmd(), newDedupeCmd())

	return cmd
}

var opShort = map[setop.Op]string{
	setop.OpUnion:     "values in either set",
	setop.OpIntersect: "values in both sets",
	setop.OpDiff:      "values in the first set but not the second",
	setop.OpSymDiff:   "values in exactly one of the sets",
}

func newOpCmd(op setop.Op) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " A B",
		Short: "print the " + opShort[op],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)

			a, b, err := readSets(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			out, err := setop.Apply(op, a, b)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"a":      a.Len(),
				"b":      b.Len(),
				"result": out.Len(),
			}).Debug("applied")

			return write(cmd, out)
		},
	}
}

func newSubsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subset A B",
		Short: "print whether every value of A is in B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readSets(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			return write(cmd, setop.Subset(a, b))
		},
	}
}

func newDedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe FILE",
		Short: "drop repeated mapping keys, keeping the first occurrence",
		Long: `dedupe reads a mapping that may repeat keys and prints it with
every key once. The first value of a key is kept, the dropped ones
are logged as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd).WithField("file", args[0])

			var m *vecmap.Map[setop.Scalar, any]
			err := withInput(cmd, args[0], func(r io.Reader) (err error) {
				m, err = setop.Dedupe(r, log)
				return err
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			return write(cmd, m)
		},
	}
}

func newLogger(cmd *cobra.Command) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logger.Level = logrus.InfoLevel
	if flagVerbose.Bool(cmd) {
		logger.Level = logrus.DebugLevel
	}

	return logger.WithFields(logrus.Fields{"cmd": cmd.Name()})
}

func readSets(cmd *cobra.Command, nameA, nameB string) (a, b *vecmap.Set[setop.Scalar], err error) {
	read := func(name string) (s *vecmap.Set[setop.Scalar], err error) {
		err = withInput(cmd, name, func(r io.Reader) (err error) {
			s, err = setop.ReadSet(r)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return s, nil
	}

	if a, err = read(nameA); err != nil {
		return nil, nil, err
	}
	if b, err = read(nameB); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// withInput calls f with the named file, or standard input for "-".
func withInput(cmd *cobra.Command, name string, f func(io.Reader) error) error {
	if name == "-" {
		return f(cmd.InOrStdin())
	}

	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return f(file)
}

func write(cmd *cobra.Command, v any) error {
	format, err := setop.ParseFormat(flagFormat.String(cmd))
	if err != nil {
		return err
	}

	return setop.Write(cmd.OutOrStdout(), v, format)
}
