// Command ssz-vectors generates and checks SSZ light-client conformance vectors.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/524119574/lcssz/internal/crosscheck"
	"github.com/524119574/lcssz/internal/logging"
	"github.com/524119574/lcssz/types"
	"github.com/524119574/lcssz/vectors"
)

const envPrefix = "SSZ_VECTORS"

const (
	keyOut       = "out"
	keySpecTests = "spec-tests"
	keyFork      = "fork"
	keyLogLevel  = "log-level"
	keyVectors   = "vectors"
	keyCross     = "crosscheck"
)

var logger = logging.NewLogger("ssz-vectors")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfgFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "ssz-vectors",
		Short:         "Generate and check SSZ vectors for light-client containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "could not read config %s", cfgFile)
				}
			}
			return logging.SetupGlobalLogger(v.GetString(keyLogLevel))
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String(keyLogLevel, "info", "log level")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup(keyLogLevel))

	rootCmd.AddCommand(newGenerateCommand(v), newVerifyCommand(v))
	return rootCmd
}

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the {ssz, root} vector file for the sample containers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), v.GetString(keyOut), cmd.OutOrStdout())
		},
	}
	cmd.Flags().String(keyOut, "", "output file (default stdout)")
	_ = v.BindPFlag(keyOut, cmd.Flags().Lookup(keyOut))
	return cmd
}

func runGenerate(ctx context.Context, out string, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cache, err := types.NewRootCache(types.DefaultRootCacheSize)
	if err != nil {
		return err
	}
	defer cache.Close()

	results, err := vectors.Generate(ctx, vectors.Samples(), cache)
	if err != nil {
		return err
	}

	if out == "" {
		if err := vectors.WriteJSON(stdout, results); err != nil {
			return errors.Wrap(err, "could not write vectors")
		}
		logger.Info().Int(logging.FieldCount, len(results)).Msg("Vectors written")
		return nil
	}
	if err := writeVectorFile(out, results); err != nil {
		return err
	}
	logger.Info().Int(logging.FieldCount, len(results)).Str(logging.FieldPath, out).Msg("Vectors written")
	return nil
}

func writeVectorFile(path string, results []vectors.Result) (err error) {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "could not open output file %s", path)
	}
	defer closeOutput(fh, path, &err)
	if err := vectors.WriteJSON(fh, results); err != nil {
		return errors.Wrap(err, "could not write vectors")
	}
	return nil
}

// closeOutput closes c and stores the close error in err unless err is
// already set.
func closeOutput(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = errors.Wrapf(cerr, "could not close output file %s", path)
	}
}

func newVerifyCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a vector file and/or consensus-spec-tests ssz_static cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			vectorFile := v.GetString(keyVectors)
			specTests := v.GetString(keySpecTests)
			cross := v.GetBool(keyCross)
			if vectorFile == "" && specTests == "" && !cross {
				return errors.New("nothing to verify: pass --vectors, --spec-tests or --crosscheck")
			}
			if cross {
				if err := verifyCrosscheck(); err != nil {
					return err
				}
			}
			if vectorFile != "" {
				if err := verifyVectorFile(vectorFile); err != nil {
					return err
				}
			}
			if specTests != "" {
				return verifySpecTests(specTests, v.GetString(keyFork))
			}
			return nil
		},
	}
	cmd.Flags().String(keyVectors, "", "vector file to check")
	cmd.Flags().String(keySpecTests, "", "root of a consensus-spec-tests checkout")
	cmd.Flags().String(keyFork, "deneb", "fork directory to read spec tests from")
	cmd.Flags().Bool(keyCross, false, "compare sample roots against fastssz, go-ssz and zssz")
	for _, key := range []string{keyVectors, keySpecTests, keyFork, keyCross} {
		_ = v.BindPFlag(key, cmd.Flags().Lookup(key))
	}
	return cmd
}

func verifyCrosscheck() error {
	mismatches, err := crosscheck.Run()
	if err != nil {
		return err
	}
	if len(mismatches) > 0 {
		m := mismatches[0]
		return errors.Errorf("%d root mismatches, first: %s via %s", len(mismatches), m.Name, m.Impl)
	}
	logger.Info().Msg("Roots agree with independent implementations")
	return nil
}

func verifyVectorFile(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	entries, err := vectors.ReadJSON(fh)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	if err := vectors.Check(entries); err != nil {
		return err
	}
	logger.Info().Int(logging.FieldCount, len(entries)).Str(logging.FieldPath, path).Msg("Vector file verified")
	return nil
}

func verifySpecTests(root, fork string) error {
	dir := vectors.StaticDir(root, fork)
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "consensus-spec-tests not found at %s", dir)
	}
	report, err := vectors.RunSpecTests(dir, vectors.SpecTestNames)
	if err != nil {
		return err
	}
	if len(report.Failures) > 0 {
		return errors.Errorf("%d spec test cases failed, %d passed", len(report.Failures), report.Passed)
	}
	logger.Info().Int(logging.FieldCount, report.Passed).Msg("Spec tests passed")
	return nil
}
