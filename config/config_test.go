package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggedit"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ggedit.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()
	require.NoError(t, opts.Validate())
	assert.True(t, opts.SnapToGrid)
	assert.Equal(t, 15.0, opts.SnapX)
	assert.Equal(t, 7.0, opts.HitThreshold)
	assert.Equal(t, ggedit.FillRuleEvenOdd, opts.DefaultFillRule)
	assert.False(t, opts.DrawPoints)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
snap_x = 10
draw_points = true
default_fill_rule = "nonzero"
`)
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, opts.SnapX)
	assert.Equal(t, 15.0, opts.SnapY, "missing keys keep their defaults")
	assert.True(t, opts.DrawPoints)
	assert.Equal(t, ggedit.FillRuleNonZero, opts.DefaultFillRule)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "snap_z = 1\n", "snap_z"},
		{"bad fill rule", "default_fill_rule = \"winding\"\n", "winding"},
		{"syntax", "snap_x = \n", "decode"},
		{"invalid value", "hit_threshold = 0\n", "hit_threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero snap", func(o *Options) { o.SnapX = 0 }},
		{"negative snap", func(o *Options) { o.SnapY = -1 }},
		{"zero zoom", func(o *Options) { o.Zoom = 0 }},
		{"negative point size", func(o *Options) { o.PointSize = -4 }},
		{"negative cache", func(o *Options) { o.ImageCacheSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalid)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GGEDIT_SNAP_X", "20")
	t.Setenv("GGEDIT_TRY_TO_CONNECT", "true")
	t.Setenv("GGEDIT_DEFAULT_FILL_RULE", "nonzero")

	opts, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, 20.0, opts.SnapX)
	assert.Equal(t, 15.0, opts.SnapY)
	assert.True(t, opts.TryToConnect)
	assert.Equal(t, ggedit.FillRuleNonZero, opts.DefaultFillRule)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("GGEDIT_ZOOM", "abc")
	_, err := FromEnv(Default())
	assert.ErrorContains(t, err, "config: environment")
}

func TestEncodeRoundTrip(t *testing.T) {
	opts := Default()
	opts.SnapX = 5
	opts.DefaultFillRule = ggedit.FillRuleNonZero

	var buf bytes.Buffer
	require.NoError(t, opts.Encode(&buf))
	assert.True(t, strings.Contains(buf.String(), `default_fill_rule = 'nonzero'`) ||
		strings.Contains(buf.String(), `default_fill_rule = "nonzero"`))

	got := Default()
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, opts, got)
}
