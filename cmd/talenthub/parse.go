package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/talenthq/talent-hub/internal/extraction"
	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/resume"
	"github.com/talenthq/talent-hub/internal/upload"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume file into structured JSON",
	Long:  `Run a single resume file (PDF or plain text) through the ingestion pipeline and print the extracted profile fields as JSON. Without an API key the demo payload is printed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, cfg.APIKey)
	if err != nil {
		var notConfigured *llm.NotConfiguredError
		if !errors.As(err, &notConfigured) {
			return err
		}
		client = nil
	}
	if client != nil {
		defer client.Close()
	}

	extractor := extraction.New(extraction.Config{
		Pdftotext: cfg.Pdftotext,
		Pdftoppm:  cfg.Pdftoppm,
		Tesseract: cfg.Tesseract,
		DPI:       cfg.OCRDPI,
	})
	svc := resume.NewService(extractor, client)

	file := upload.File{
		Name: filepath.Base(path),
		Size: int64(len(data)),
	}
	parsed, err := svc.Parse(ctx, file, data)
	if err != nil {
		var notConfigured *llm.NotConfiguredError
		if errors.As(err, &notConfigured) {
			fmt.Fprintln(os.Stderr, "No API key configured; printing the demo payload.")
			parsed = resume.Mock(context.Background())
		} else {
			return err
		}
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
