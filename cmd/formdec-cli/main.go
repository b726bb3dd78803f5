package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/lccp/go-formdec/pkg/compile"
	"github.com/lccp/go-formdec/pkg/render"
	"github.com/lccp/go-formdec/pkg/schema"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		source       string
		output       string
		rendererName string
		formClass    string
		report       bool
	)

	cmd := &cobra.Command{
		Use:           "formdec-cli",
		Short:         "Compile a JSON or YAML form definition into HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			raw, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
			doc, err := schema.NewDocument(schema.SourceFromFile(source), raw)
			if err != nil {
				return err
			}
			form, err := schema.ParseDocument(doc)
			if err != nil {
				return err
			}

			options := []compile.Option{compile.WithLogger(logger)}
			if formClass != "" {
				options = append(options, compile.WithFormClass(formClass))
			}
			compiler := compile.New(options...)

			if report {
				result := compiler.Compile(form)
				encoded, err := json.MarshalIndent(result.Unknown, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				return writeOutput(cmd, output, append(encoded, '\n'))
			}

			registry := render.NewRegistry()
			registry.MustRegister(compile.NewHTMLRenderer(compiler))

			renderer, err := registry.Get(rendererName)
			if err != nil {
				return err
			}
			rendered, err := renderer.Render(context.Background(), form)
			if err != nil {
				return fmt.Errorf("render form: %w", err)
			}
			return writeOutput(cmd, output, rendered)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "form definition path (.json, .yaml)")
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&rendererName, "renderer", "html", "renderer to use")
	cmd.Flags().StringVar(&formClass, "form-class", "", "override the form container class")
	cmd.Flags().BoolVar(&report, "report", false, "print the unknown-field-type report instead of markup")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		cmd.OutOrStdout().Write(data)
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", path)
	return nil
}
