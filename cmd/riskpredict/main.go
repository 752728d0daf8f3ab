// riskpredict scores one patient record against the trained risk model and
// prints the result as JSON.
//
// Usage:
//
//	riskpredict [--artifacts=<dir>] [--verbose] ['<record-json>']
//
// With no argument a built-in sample patient is scored and pretty-printed.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iggi84/patients-health-tracker/internal/application/dto"
	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/artifact"
	"github.com/iggi84/patients-health-tracker/pkg/observability"
)

// version is set at build time via -ldflags.
var version = "dev"

const defaultArtifactDir = "./ml"

// samplePatient is scored when no record is given.
var samplePatient = model.PatientRecord{
	model.SignalHeartRate:              105,
	model.SignalRespiratoryRate:        24,
	model.SignalBodyTemperature:        38.5,
	model.SignalOxygenSaturation:       92,
	model.SignalSystolicBloodPressure:  160,
	model.SignalDiastolicBloodPressure: 95,
	model.SignalAge:                    68,
	model.SignalBMI:                    32,
	model.SignalHRV:                    25,
	model.SignalPulsePressure:          65,
	model.SignalMAP:                    116,
}

type options struct {
	artifactDir string
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "riskpredict ['<record-json>']",
		Short: "Score a patient's vital signs with the risk model",
		Long: "riskpredict loads the classifier artifacts, scores one flat patient record\n" +
			"and annotates it with rule-based risk factors.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.artifactDir, "artifacts", "", "Artifact directory (default $RISK_ARTIFACT_DIR or ./ml)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline steps to stderr")

	return cmd
}

func runPredict(opts options, args []string, stdout, stderr io.Writer) error {
	level := "error"
	if opts.verbose {
		level = "debug"
	}
	logger := observability.InitLogger(observability.LogConfig{
		Level:  level,
		Format: "text",
		Output: stderr,
	})

	dir := resolveArtifactDir(opts.artifactDir)
	logger.Debug("loading artifacts", slog.String("dir", dir))

	artifacts, err := artifact.Load(dir)
	if err != nil {
		return err
	}
	predictor, err := service.NewPredictor(*artifacts)
	if err != nil {
		return err
	}

	record := samplePatient
	pretty := true
	if len(args) == 1 {
		if record, err = parseRecord(args[0]); err != nil {
			return err
		}
		pretty = false
	} else {
		fmt.Fprintln(stderr, "Testing model with sample patient data")
	}

	prediction, err := predictor.Predict(record)
	if err != nil {
		return err
	}
	logger.Debug("prediction complete",
		slog.String("risk_level", prediction.RiskLevel),
		slog.Float64("confidence", prediction.Confidence),
		slog.Int("risk_factors", len(prediction.RiskFactors)),
	)

	enc := json.NewEncoder(stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(dto.FromPrediction(prediction))
}

func parseRecord(raw string) (model.PatientRecord, error) {
	var record model.PatientRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("invalid patient record: %w", err)
	}
	if record == nil {
		return nil, errors.New("invalid patient record: expected a JSON object")
	}
	return record, nil
}

func resolveArtifactDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("RISK_ARTIFACT_DIR"); env != "" {
		return env
	}
	return defaultArtifactDir
}

// run executes the command and returns the process exit status. Failures are
// reported on stdout as {"error": "..."}.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		_ = json.NewEncoder(stdout).Encode(map[string]string{"error": err.Error()})
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
