package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ha1tch/fsagrade/pkg/grading"
)

// yamlConfig is the on-disk shape of an optional grading configuration
// file, mirroring aretext's config.yaml loading style: unmarshal into a
// plain struct, then translate into the package's real Config.
type yamlConfig struct {
	EvaluationMode     string `yaml:"evaluation_mode"`
	ExpectedType       string `yaml:"expected_type"`
	FeedbackVerbosity  string `yaml:"feedback_verbosity"`
	CheckMinimality    bool   `yaml:"check_minimality"`
	CheckCompleteness  bool   `yaml:"check_completeness"`
	HighlightErrors    *bool  `yaml:"highlight_errors"`
	ShowCounterexample bool   `yaml:"show_counterexample"`
	MaxTestLength      int    `yaml:"max_test_length"`
}

// loadConfig reads a YAML grading configuration from path, falling back
// to grading.DefaultConfig when path is empty.
func loadConfig(path string) (grading.Config, error) {
	cfg := grading.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if y.EvaluationMode != "" {
		cfg.EvaluationMode = grading.EvaluationMode(y.EvaluationMode)
	}
	if y.ExpectedType != "" {
		cfg.ExpectedType = automatonType(y.ExpectedType)
	}
	if y.FeedbackVerbosity != "" {
		cfg.FeedbackVerbosity = grading.Verbosity(y.FeedbackVerbosity)
	}
	cfg.CheckMinimality = y.CheckMinimality
	cfg.CheckCompleteness = y.CheckCompleteness
	if y.HighlightErrors != nil {
		cfg.HighlightErrors = *y.HighlightErrors
	}
	cfg.ShowCounterexample = y.ShowCounterexample
	if y.MaxTestLength > 0 {
		cfg.MaxTestLength = y.MaxTestLength
	}

	return cfg, nil
}
