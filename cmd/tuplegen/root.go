package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rogpeppe/hlist/internal/tuplegen"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TUPLEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "tuplegen",
		Short:        "Generate per-length tuple code",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.IntP("max", "n", tuplegen.DefaultMax, "largest tuple length to generate code for")
	flags.StringP("out", "o", "", "output file (default standard output)")
	flags.String("package", "", "package name of the generated file (default the command name)")
	flags.String("tuple-import", tuplegen.DefaultTupleImport, "import path of the tuple package")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newKindCmd(v, tuplegen.KindTuple, "Generate the tuple types and operations"),
		newKindCmd(v, tuplegen.KindTupleFunc, "Generate the function conversions"),
	)
	return root
}

func newKindCmd(v *viper.Viper, kind tuplegen.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), v, kind, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func run(ctx context.Context, v *viper.Viper, kind tuplegen.Kind, stdout, stderr io.Writer) error {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "tuplegen",
	})
	if v.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	cfg := tuplegen.Config{
		Package:     v.GetString("package"),
		Max:         v.GetInt("max"),
		TupleImport: v.GetString("tuple-import"),
	}
	logger.Debug("generating", "kind", kind, "max", cfg.Max)

	src, err := tuplegen.Generate(kind, cfg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := v.GetString("out")
	if out == "" {
		_, err := stdout.Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0o666); err != nil {
		return fmt.Errorf("cannot write generated code: %w", err)
	}
	logger.Debug("wrote file", "path", out, "bytes", len(src))
	return nil
}
