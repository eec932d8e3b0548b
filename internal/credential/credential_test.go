// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package credential

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperboy/pkg/types"
)

func TestResolveInline(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    types.Credential
		wantErr bool
	}{
		{name: "name and value", arg: "SSESSabc=xyz123", want: types.Credential{"SSESSabc": "xyz123"}},
		{name: "value with dots", arg: "session=a.b.c", want: types.Credential{"session": "a.b.c"}},
		{name: "no separator", arg: "justavalue", wantErr: true},
		{name: "two separators", arg: "a=b=c", wantErr: true},
		{name: "empty name", arg: "=value", wantErr: true},
		{name: "empty value", arg: "name=", wantErr: true},
		{name: "empty string", arg: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCredential)
				assert.Contains(t, err.Error(), tt.arg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.Credential
		errMsg  string
	}{
		{
			name:    "single cookie",
			content: `{"SSESSabc": "xyz123"}`,
			want:    types.Credential{"SSESSabc": "xyz123"},
		},
		{
			name:    "several cookies",
			content: `{"a": "1", "b": "2=="}`,
			want:    types.Credential{"a": "1", "b": "2=="},
		},
		{
			name:    "not json",
			content: `SSESSabc=xyz123`,
			errMsg:  "parsing",
		},
		{
			name:    "array instead of object",
			content: `["a", "b"]`,
			errMsg:  "parsing",
		},
		{
			name:    "non-string value",
			content: `{"a": 1}`,
			errMsg:  "not a string",
		},
		{
			name:    "empty object",
			content: `{}`,
			errMsg:  "no cookies",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "cookie.json", tt.content)
			got, err := Resolve(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCredential)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(dir)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Contains(t, err.Error(), "reading")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
