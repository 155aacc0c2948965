package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-parser/api/http/handlers"
	"github.com/artem13815/resume-parser/pkg/agent"
	"github.com/artem13815/resume-parser/pkg/config"
	"github.com/artem13815/resume-parser/pkg/resume"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume into structured profile JSON",
	Long:  "Parse extracts the resume text and sends it to the configured LLM agent. Provider, model and key come from the environment or .env, the same as the server.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile string
	parseProvider   string
	parseModel      string
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Write JSON to this file instead of stdout")
	parseCmd.Flags().StringVar(&parseProvider, "provider", "", "LLM provider: openai or gemini (overrides LLM_PROVIDER)")
	parseCmd.Flags().StringVar(&parseModel, "model", "", "Model name (overrides LLM_MODEL)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if parseProvider != "" {
		cfg.LLMProvider = parseProvider
	}
	if parseModel != "" {
		cfg.LLMModel = parseModel
	}
	if cfg.LLMAPIKey == "" {
		return fmt.Errorf("API key is required (set GOOGLE_API_KEY or LLM_API_KEY)")
	}

	data, mimeType, err := readResume(args[0])
	if err != nil {
		return err
	}
	if int64(len(data)) > cfg.MaxUploadBytes {
		return &resume.FileTooLargeError{Limit: cfg.MaxUploadBytes}
	}

	ctx := cmd.Context()
	a, err := agent.FromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	result, err := resume.NewParseService(a, cfg.AgentTimeout).Parse(ctx, filepath.Base(args[0]), mimeType, data)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(handlers.ParseResponse{Status: "Resume parsed", Content: result}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if parseOutputFile == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return err
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", parseOutputFile)
	return nil
}
