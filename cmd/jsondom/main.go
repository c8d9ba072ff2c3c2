// Command jsondom is a small CLI around the jsondom package: it validates,
// pretty-prints, and runs JSONPath queries against JSON documents read from
// a file or stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	jsondom "github.com/shapestone/jsondom/pkg/json"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsondom",
		Short:         "Parse, validate, and query JSON documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newFormatCmd())
	root.AddCommand(newQueryCmd())
	return root
}

// readInput reads path's contents, or stdin when path is "-" or omitted.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func newValidateCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Report whether input is a single well-formed JSON value",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			requestID := uuid.New()
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("request %s: read input: %w", requestID, err)
			}
			if err := jsondom.Validate(string(data)); err != nil {
				return fmt.Errorf("request %s: invalid: %w", requestID, err)
			}
			fmt.Println("valid")
			return nil
		},
	}
	return cmd
}

func newFormatCmd() *cobra.Command {
	var (
		path    string
		compact bool
		indent  string
	)
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Pretty-print or compact a JSON document",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			requestID := uuid.New()
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("request %s: read input: %w", requestID, err)
			}
			v, err := jsondom.Parse(string(data))
			if err != nil {
				return fmt.Errorf("request %s: parse: %w", requestID, err)
			}

			var out []byte
			if compact {
				out, err = jsondom.Render(v)
			} else {
				out, err = jsondom.RenderIndent(v, "", indent)
			}
			if err != nil {
				return fmt.Errorf("request %s: render: %w", requestID, err)
			}
			out = append(out, '\n')
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation unit used when not --compact")
	return cmd
}

func newQueryCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "query <jsonpath> [file]",
		Short: "Run a JSONPath query against a JSON document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			query := args[0]
			if len(args) > 1 {
				path = args[1]
			}
			requestID := uuid.New()
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("request %s: read input: %w", requestID, err)
			}
			v, err := jsondom.Parse(string(data))
			if err != nil {
				return fmt.Errorf("request %s: parse: %w", requestID, err)
			}
			matches, err := jsondom.Select(v, query)
			if err != nil {
				return fmt.Errorf("request %s: query: %w", requestID, err)
			}
			for _, m := range matches {
				out, err := jsondom.Render(m)
				if err != nil {
					return fmt.Errorf("request %s: render match: %w", requestID, err)
				}
				fmt.Println(string(out))
			}
			return nil
		},
	}
	return cmd
}
