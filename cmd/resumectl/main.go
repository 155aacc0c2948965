// Package main provides resumectl, a command line front end to the resume
// extraction and parsing pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Extract and parse resumes from the command line",
	Long:          "resumectl runs the same extraction and agent pipeline as the HTTP service against local PDF and DOCX files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
