package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"osa-filters/internal/app"
	"osa-filters/internal/filters"
	"osa-filters/internal/types"
)

type evalOptions struct {
	Output string
}

func newEvalCommand() *cobra.Command {
	opts := evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval <filter> [arg...]",
		Short: "Evaluate a filter against command line arguments",
		Long: `Evaluate a filter against command line arguments.

Arguments are passed as strings. An argument of the form @<path> is
read from the file at <path> and passed as a list of its lines; "@-"
reads the list from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args[0], args[1:])
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "text", "Output format (text, json, yaml)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runEval(cmd *cobra.Command, opts evalOptions, filter string, rawArgs []string) error {
	ctx := cmd.Context()
	service, err := app.NewService(ctx)
	if err != nil {
		return err
	}
	filterArgs, err := parseFilterArgs(rawArgs, cmd.InOrStdin())
	if err != nil {
		return err
	}
	result, err := service.Eval(ctx, app.EvalRequest{Filter: filter, Args: filterArgs})
	if err != nil {
		return err
	}
	return renderValue(cmd.OutOrStdout(), result.Value, types.OutputFormat(opts.Output))
}

// parseFilterArgs turns command line arguments into filter arguments:
// plain strings stay scalars, @<path> arguments become line lists.
func parseFilterArgs(rawArgs []string, stdin io.Reader) (filters.Args, error) {
	out := make(filters.Args, 0, len(rawArgs))
	for _, raw := range rawArgs {
		if !strings.HasPrefix(raw, "@") {
			out = append(out, raw)
			continue
		}
		lines, err := readLines(raw[1:], stdin)
		if err != nil {
			return nil, err
		}
		out = append(out, lines)
	}
	return out, nil
}

func readLines(path string, stdin io.Reader) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to read list argument %q", path)).
			WithCause(err)
	}
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func renderValue(w io.Writer, value any, format types.OutputFormat) error {
	switch format {
	case types.OutputFormatJSON:
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(encoded))
		return nil
	case types.OutputFormatYAML:
		encoded, err := yaml.Marshal(value)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(encoded))
		return nil
	case types.OutputFormatText, "":
		switch typed := value.(type) {
		case []string:
			for _, item := range typed {
				fmt.Fprintln(w, item)
			}
			return nil
		case string, int, bool:
			fmt.Fprintln(w, typed)
			return nil
		default:
			encoded, err := yaml.Marshal(typed)
			if err != nil {
				return err
			}
			fmt.Fprint(w, string(encoded))
			return nil
		}
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
}
