package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/binary"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/config"
	"github.com/ZebulonRouseFrantzich/hadolint-py/internal/service"
)

// newRootCmd builds the hook command. It owns no flags: flag parsing is
// disabled so every argument reaches hadolint untouched. The delegate's exit
// code is stored in *code.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hadolint [hadolint arguments...]",
		Short: "Download a pinned hadolint release and run it",
		Long: `Resolves the hadolint version pinned by PRE_COMMIT_REF, downloads the matching
release binary into ~/.cache/hadolint-py on first use, and runs it with the
given arguments. Output and exit code are passed through unchanged.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(stderr, cfg)
			if err != nil {
				return err
			}
			logger.Debug("starting", "version", Version, "ref", cfg.Ref, "cache", cfg.CacheRoot)

			mgr, err := binary.NewManager(binary.Config{
				CacheRoot: cfg.CacheRoot,
				BaseURL:   cfg.BaseURL,
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			hook := service.NewHook(cfg, mgr,
				service.WithLogger(logger),
				service.WithStreams(stdin, stdout, stderr),
			)

			*code, err = hook.Run(cmd.Context(), args)
			return err
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

// run executes the hook and returns the process exit code: the delegate's
// code, or 1 after printing "Error: <message>" for any failure of our own.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	code := 0
	cmd := newRootCmd(stdin, stdout, stderr, &code)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return code
}
