package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/tips"
)

var (
	tipsRole   string
	tipsSkills []string
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Print career tips and course recommendations",
	Long:  `Request career tips and course recommendations for a role and skill list. Without an API key the demo payload is printed.`,
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().StringVar(&tipsRole, "role", "", "Target role, e.g. \"Backend Engineer\"")
	tipsCmd.Flags().StringSliceVar(&tipsSkills, "skills", nil, "Comma-separated skill list")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	result := tips.NewService(client).Recommend(ctx, tipsRole, tipsSkills)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
