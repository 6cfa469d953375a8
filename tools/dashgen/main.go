package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mkhandekar/restock-tracker/tools/dashgen/dashboards"
	"github.com/mkhandekar/restock-tracker/tools/dashgen/rules"
	"github.com/mkhandekar/restock-tracker/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building overview dashboard: %w", err)
	}

	recording := rules.RecordingRules()
	alerts := rules.AlertRules()

	for name, result := range map[string]*validate.Result{
		"overview dashboard": validate.Dashboard(dash, KnownMetrics),
		"recording rules":    validate.Rules(recording, KnownMetrics),
		"alert rules":        validate.Rules(alerts, KnownMetrics),
	} {
		if !result.Ok() {
			return fmt.Errorf("%s failed validation: %v", name, result.Errors)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", name, w)
		}
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	dashJSON, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}
	dashJSON = append(dashJSON, '\n')

	recordingYAML, err := yaml.Marshal(recording)
	if err != nil {
		return fmt.Errorf("marshaling recording rules: %w", err)
	}
	alertsYAML, err := yaml.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("marshaling alert rules: %w", err)
	}

	artifacts := map[string][]byte{
		filepath.Join(cfg.OutputDir, "grafana", "data", "restock-overview.json"):    dashJSON,
		filepath.Join(cfg.OutputDir, "prometheus", "restock-recording-rules.yaml"): append([]byte(generatedHeader), recordingYAML...),
		filepath.Join(cfg.OutputDir, "prometheus", "restock-alerts.yaml"):          append([]byte(generatedHeader), alertsYAML...),
	}

	for path, data := range artifacts {
		if !cfg.DashboardEnabled && filepath.Ext(path) == ".json" {
			continue
		}
		if !cfg.RulesEnabled && filepath.Ext(path) == ".yaml" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	return nil
}
