package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/viper"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// envPrefix is prepended to config keys when resolving environment
// overrides, e.g. VALIDATE_WORKER_VALIDATOR_COMMAND.
const envPrefix = "VALIDATE_WORKER"

// Load reads the worker config file, decodes it and applies environment
// overrides. An empty path yields a config of defaults and overrides only.
func Load(configPath string) (*WorkerConfig, error) {
	workerConfig := NewWorkerConfig()

	if configPath != "" {
		hclBytes, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := ParseConfig(hclBytes, configPath, workerConfig); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(workerConfig)

	if err := workerConfig.Validate(); err != nil {
		return nil, err
	}
	return workerConfig, nil
}

// ParseConfig decodes HCL bytes into the target struct.
func ParseConfig(hclBytes []byte, filename string, target any) error {
	file, diags := hclsyntax.ParseConfig(hclBytes, filename, hcl.Pos{Line: 1, Column: 1})
	if diags != nil && diags.HasErrors() {
		return hclDiagsToError("failed to parse config", diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}

	decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, target)
	diags = append(diags, decodeDiags...)
	if diags.HasErrors() {
		return hclDiagsToError("failed to decode config", diags)
	}

	return nil
}

func applyEnvOverrides(workerConfig *WorkerConfig) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if v.IsSet("validator_command") {
		workerConfig.ValidatorCommand = v.GetString("validator_command")
	}
	if v.IsSet("validator_timeout_secs") {
		workerConfig.ValidatorTimeoutSecs = v.GetInt("validator_timeout_secs")
	}
	if v.IsSet("scratch_root") {
		workerConfig.ScratchRoot = v.GetString("scratch_root")
	}
}

// hclDiagsToError flattens hcl diagnostics into a single error.
func hclDiagsToError(prefix string, diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}
	var messages []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		message := diag.Summary
		if diag.Detail != "" {
			message = fmt.Sprintf("%s: %s", message, diag.Detail)
		}
		if diag.Subject != nil {
			message = fmt.Sprintf("%s (%s)", message, diag.Subject.String())
		}
		messages = append(messages, message)
	}
	return fmt.Errorf("%s: %s", prefix, strings.Join(messages, "; "))
}
