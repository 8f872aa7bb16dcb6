package locator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *Locator
		wantErr bool
	}{
		{
			name: "s3 long form",
			raw:  "s3://accounts/prod/containers/genomics-refs/paths/batch42/sample.fa",
			want: &Locator{
				Raw:       "s3://accounts/prod/containers/genomics-refs/paths/batch42/sample.fa",
				StoreURI:  "s3://accounts/prod/containers/genomics-refs",
				Scheme:    "s3",
				Container: "genomics-refs",
				Path:      "batch42/sample.fa",
			},
		},
		{
			name: "gs long form",
			raw:  "gs://projects/helix-prod/containers/labels/paths/sample.lbl",
			want: &Locator{
				Raw:       "gs://projects/helix-prod/containers/labels/paths/sample.lbl",
				StoreURI:  "gs://projects/helix-prod/containers/labels",
				Scheme:    "gs",
				Container: "labels",
				Path:      "sample.lbl",
			},
		},
		{
			name: "file scheme",
			raw:  "file://localhost/containers/scratch/paths/a/b/c.txt",
			want: &Locator{
				Raw:       "file://localhost/containers/scratch/paths/a/b/c.txt",
				StoreURI:  "file://localhost/containers/scratch",
				Scheme:    "file",
				Container: "scratch",
				Path:      "a/b/c.txt",
			},
		},
		{
			name: "no scheme still parses",
			raw:  "containers/refs/paths/x.bin",
			want: &Locator{
				Raw:       "containers/refs/paths/x.bin",
				StoreURI:  "containers/refs",
				Scheme:    "",
				Container: "refs",
				Path:      "x.bin",
			},
		},
		{
			name:    "missing paths marker",
			raw:     "s3://accounts/prod/containers/genomics-refs/sample.fa",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				var malformed *MalformedLocatorError
				assert.True(t, errors.As(err, &malformed))
				assert.Contains(t, malformed.Error(), tt.raw)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// parsing must be reversible: rejoining the parts reconstructs the input
func Test_Parse_Reconstructs(t *testing.T) {
	raws := []string{
		"s3://accounts/prod/containers/refs/paths/a.fa",
		"gs://p/containers/labels/paths/deep/nested/file.lbl",
		"file://localhost/containers/c/paths/x",
	}
	for _, raw := range raws {
		loc, err := Parse(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, loc.StoreURI+PathsMarker+loc.Path)
	}
}

func Test_Parse_Deterministic(t *testing.T) {
	raw := "s3://accounts/prod/containers/refs/paths/a.fa"
	first, err := Parse(raw)
	assert.NoError(t, err)
	second, err := Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
