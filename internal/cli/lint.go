package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"osa-filters/internal/app"
	"osa-filters/internal/types"
)

type lintOptions struct {
	Output string
}

func newLintCommand() *cobra.Command {
	opts := lintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <requirements-file>",
		Short: "Validate the version specs in a pip requirements file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "text", "Output format (text, json, yaml)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runLint(cmd *cobra.Command, opts lintOptions, path string) error {
	ctx := cmd.Context()
	service, err := app.NewService(ctx)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to read requirements file %q", path)).
			WithCause(err)
	}
	result, err := service.Lint(ctx, app.LintRequest{
		Requirements: strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"),
	})
	if err != nil {
		return err
	}

	if opts.Output != "text" {
		if err := renderValue(cmd.OutOrStdout(), result, types.OutputFormat(opts.Output)); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d requirements\n", result.Checked)
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s (%s)\n", path, issue.Line, issue.Reason, issue.Requirement)
		}
	}

	if len(result.Issues) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d invalid requirements in %s", len(result.Issues), path))
	}
	return nil
}
