package commands

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/payplan-tools/payplan/pkg/adapters"
	"github.com/payplan-tools/payplan/pkg/models/api"
	"github.com/payplan-tools/payplan/pkg/runtime/terminal/export"
	"github.com/payplan-tools/payplan/pkg/services/plan"
	"github.com/spf13/cobra"
)

// NewPlanCmd builds the `plan` subcommand: run the engine against a JSON
// request file and print the result.
func NewPlanCmd(controller *plan.Controller, reporter *export.Reporter) *cobra.Command {
	var inputPath string
	var icsPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a payment plan from a request file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			var req api.PlanRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("failed to parse input file: %w", err)
			}

			items, cfg := adapters.MapPlanRequestToDomain(req)
			result, err := controller.BuildPlan(cmd.Context(), items, cfg)
			if err != nil {
				return err
			}

			if err := reporter.Handle(result); err != nil {
				return err
			}

			if icsPath != "" {
				payload, err := base64.StdEncoding.DecodeString(result.ICS)
				if err != nil {
					return fmt.Errorf("failed to decode calendar payload: %w", err)
				}
				if err := os.WriteFile(icsPath, payload, 0o644); err != nil {
					return fmt.Errorf("failed to write calendar file: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the JSON plan request")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Write the decoded .ics calendar to this path")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
