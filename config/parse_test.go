package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func writeConfigFile(t *testing.T, hclBody string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "worker.hcl")
	assert.NoError(t, os.WriteFile(p, []byte(hclBody), 0644))
	return p
}

func Test_Load_Defaults(t *testing.T) {
	workerConfig, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, "/opt/validation/validate.sh", workerConfig.ValidatorCommand)
	assert.Equal(t, 600*time.Second, workerConfig.ValidatorTimeout())
	assert.Empty(t, workerConfig.ScratchRoot)
	assert.Nil(t, workerConfig.Downloads)
	assert.NotNil(t, workerConfig.ConnectionConfig())
}

func Test_Load_FullFile(t *testing.T) {
	p := writeConfigFile(t, `
validator_command      = "/usr/local/bin/check-batch"
validator_timeout_secs = 120
scratch_root           = "/mnt/scratch"

connections {
  file_store_root = "/mnt/refs"

  aws {
    default_region = "eu-west-1"
    access_key     = "AKIAEXAMPLE"
    secret_key     = "secret"
  }

  gcp {
    project = "helix-validation"
  }
}

downloads {
  fill_rate       = 50
  bucket_size     = 10
  max_concurrency = 4
}
`)

	workerConfig, err := Load(p)

	assert.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/check-batch", workerConfig.ValidatorCommand)
	assert.Equal(t, 120*time.Second, workerConfig.ValidatorTimeout())
	assert.Equal(t, "/mnt/scratch", workerConfig.ScratchRoot)

	conns := workerConfig.ConnectionConfig()
	assert.Equal(t, "/mnt/refs", *conns.FileStoreRoot)
	assert.Equal(t, "eu-west-1", *conns.Aws.DefaultRegion)
	assert.Equal(t, "helix-validation", *conns.Gcp.Project)

	assert.Equal(t, rate.Limit(50), workerConfig.Downloads.FillRate)
	assert.Equal(t, int64(10), workerConfig.Downloads.BucketSize)
	assert.Equal(t, int64(4), workerConfig.Downloads.MaxConcurrency)
}

func Test_Load_EnvOverrides(t *testing.T) {
	p := writeConfigFile(t, `validator_timeout_secs = 120`)
	t.Setenv("VALIDATE_WORKER_VALIDATOR_COMMAND", "/opt/alt/validate.sh")
	t.Setenv("VALIDATE_WORKER_VALIDATOR_TIMEOUT_SECS", "30")

	workerConfig, err := Load(p)

	assert.NoError(t, err)
	assert.Equal(t, "/opt/alt/validate.sh", workerConfig.ValidatorCommand)
	assert.Equal(t, 30, workerConfig.ValidatorTimeoutSecs)
}

func Test_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		hclBody string
	}{
		{
			name:    "malformed hcl",
			hclBody: `validator_command = `,
		},
		{
			name:    "zero timeout",
			hclBody: `validator_timeout_secs = 0`,
		},
		{
			name: "access key without secret",
			hclBody: `
connections {
  aws {
    access_key = "AKIAEXAMPLE"
  }
}`,
		},
		{
			name: "negative limiter",
			hclBody: `
downloads {
  max_concurrency = -1
}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, test.hclBody))
			assert.Error(t, err)
		})
	}
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.hcl"))
	assert.Error(t, err)
}
