package rate_limiter

import (
	"fmt"

	"golang.org/x/time/rate"
)

// Definition is the HCL-configurable shape of a download limiter.
type Definition struct {
	// FillRate is the sustained number of downloads per second. Zero means
	// unlimited.
	FillRate rate.Limit `hcl:"fill_rate,optional"`
	// BucketSize is the burst allowance when FillRate is set.
	BucketSize int64 `hcl:"bucket_size,optional"`
	// MaxConcurrency bounds the number of in-flight downloads. Zero means
	// unbounded.
	MaxConcurrency int64 `hcl:"max_concurrency,optional"`
}

func (d *Definition) Validate() error {
	if d.FillRate < 0 || d.BucketSize < 0 || d.MaxConcurrency < 0 {
		return fmt.Errorf("invalid download limiter definition: %s", d)
	}
	return nil
}

func (d *Definition) String() string {
	return fmt.Sprintf("FillRate(/s): %v, BucketSize: %d, MaxConcurrency: %d",
		d.FillRate, d.BucketSize, d.MaxConcurrency)
}
