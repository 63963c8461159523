package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quill/internal/config"
	"quill/internal/driver"
	"quill/internal/format"
	"quill/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format comments in source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted content to stdout instead of rewriting files")
	fmtCmd.Flags().String("config", "", "path to quill.toml (default: discovered upward from the first path)")
	fmtCmd.Flags().Int("width", 0, "max line width (overrides config)")
	fmtCmd.Flags().Int("comment-width", 0, "max comment prose width (overrides config)")
	fmtCmd.Flags().Bool("reflow", false, "reflow markdown prose in doc line comments")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Check:      check,
		Stdout:     writeToStdout,
		Extensions: cfg.Format.Extensions,
		Options:    formatOptions(cmd, cfg),
	}
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	formatResults, err := driver.FormatPaths(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(formatResults, &hasErrors)
		} else {
			renderFmtText(formatResults, check, quiet, &hasErrors, &hasChanges)
		}
	case "json":
		if err := renderFmtJSON(formatResults, check); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		return config.Load(path)
	}

	startDir := filepath.Dir(args[0])
	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		startDir = args[0]
	}
	cfg, _, err := config.Discover(startDir)
	return cfg, err
}

func formatOptions(cmd *cobra.Command, cfg config.Config) format.Options {
	opts := format.Options{
		MaxLineWidth:      cfg.Format.MaxLineWidth,
		MaxCommentWidth:   cfg.Format.MaxCommentWidth,
		ReflowDocComments: cfg.Format.ReflowDocComments,
		TabWidth:          cfg.Format.TabWidth,
	}
	if width, err := cmd.Flags().GetInt("width"); err == nil && width > 0 {
		opts.MaxLineWidth = width
	}
	if width, err := cmd.Flags().GetInt("comment-width"); err == nil && width > 0 {
		opts.MaxCommentWidth = width
	}
	if reflow, err := cmd.Flags().GetBool("reflow"); err == nil && cmd.Flags().Changed("reflow") {
		opts.ReflowDocComments = reflow
	}
	return opts
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
