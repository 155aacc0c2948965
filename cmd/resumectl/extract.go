package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-parser/pkg/resume"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the plain text extracted from a PDF or DOCX resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, mimeType, err := readResume(args[0])
	if err != nil {
		return err
	}
	text, err := resume.Extract(data, mimeType)
	if err != nil {
		return fmt.Errorf("extract %s: %w", filepath.Base(args[0]), err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// readResume loads path after the same type check the HTTP endpoint applies.
func readResume(path string) ([]byte, string, error) {
	mimeType := resume.MimeTypeFromFilename(path)
	if !resume.IsSupported(mimeType) {
		return nil, "", resume.ErrUnsupportedType
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read input file: %w", err)
	}
	return data, mimeType, nil
}
