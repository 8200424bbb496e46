package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsawler/ocrsift/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Process FineReader XML files as they appear in a directory",
	Long: `Watch a directory and process every XML file created or rewritten in
it. Outputs are written next to each input as <input>_out.xml and
<input>_guard.xml and are not processed again. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg, cmd)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		handle := func(ctx context.Context, path string) error {
			return process(ctx, cfg, logger, path, "", cmd.OutOrStdout())
		}
		return watch.New(args[0], handle, logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
