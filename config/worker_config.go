// Package config loads the worker configuration from an HCL file and
// applies environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/helixbio/validate-worker/connection"
	"github.com/helixbio/validate-worker/rate_limiter"
)

const (
	defaultValidatorCommand     = "/opt/validation/validate.sh"
	defaultValidatorTimeoutSecs = 600
)

// WorkerConfig is the root of the worker configuration file.
type WorkerConfig struct {
	// ValidatorCommand is the executable invoked once per dispatch row.
	ValidatorCommand string `hcl:"validator_command,optional"`
	// ValidatorTimeoutSecs bounds each validator invocation.
	ValidatorTimeoutSecs int `hcl:"validator_timeout_secs,optional"`
	// ScratchRoot is the parent directory for per-row scratch dirs. Empty
	// means the system temp dir.
	ScratchRoot string `hcl:"scratch_root,optional"`

	Connections *connection.Config       `hcl:"connections,block"`
	Downloads   *rate_limiter.Definition `hcl:"downloads,block"`
}

// NewWorkerConfig returns a config populated with defaults. Fields are
// overwritten by the config file and then by environment variables.
func NewWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		ValidatorCommand:     defaultValidatorCommand,
		ValidatorTimeoutSecs: defaultValidatorTimeoutSecs,
	}
}

func (c *WorkerConfig) Validate() error {
	if c.ValidatorCommand == "" {
		return fmt.Errorf("validator_command must not be empty")
	}
	if c.ValidatorTimeoutSecs <= 0 {
		return fmt.Errorf("validator_timeout_secs must be greater than 0")
	}
	if c.Connections != nil {
		if c.Connections.Aws != nil {
			if err := c.Connections.Aws.Validate(); err != nil {
				return err
			}
		}
		if c.Connections.Gcp != nil {
			if err := c.Connections.Gcp.Validate(); err != nil {
				return err
			}
		}
	}
	if c.Downloads != nil {
		if err := c.Downloads.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidatorTimeout returns the per-row validator timeout as a duration.
func (c *WorkerConfig) ValidatorTimeout() time.Duration {
	return time.Duration(c.ValidatorTimeoutSecs) * time.Second
}

// ConnectionConfig never returns nil - stores expect a config value even
// when the file declares no connections block.
func (c *WorkerConfig) ConnectionConfig() *connection.Config {
	if c.Connections == nil {
		return &connection.Config{}
	}
	return c.Connections
}
