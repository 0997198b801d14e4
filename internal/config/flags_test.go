package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestURLList_String tests the String method of URLList
func TestURLList_String(t *testing.T) {
	tests := []struct {
		name     string
		list     URLList
		expected string
	}{
		{
			name:     "empty list",
			list:     URLList{},
			expected: "",
		},
		{
			name:     "single url",
			list:     URLList{"https://a/?1#k"},
			expected: "https://a/?1#k",
		},
		{
			name:     "two urls",
			list:     URLList{"https://a/?1#k", "https://b/?2#k"},
			expected: "https://a/?1#k,https://b/?2#k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.list.String())
		})
	}
}

func TestURLList_String_Nil(t *testing.T) {
	var l *URLList
	assert.Equal(t, "", l.String())
}

// TestURLList_Set tests the Set method of URLList
func TestURLList_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    URLList
	}{
		{
			name:     "plain url",
			input:    "https://paste.example.org/?abc#key",
			expected: URLList{"https://paste.example.org/?abc#key"},
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  https://paste.example.org/?abc#key\n",
			expected: URLList{"https://paste.example.org/?abc#key"},
		},
		{
			name:        "empty value",
			input:       "",
			expectError: true,
		},
		{
			name:        "whitespace only",
			input:       "   ",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l URLList
			err := l.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, l)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}
}

// TestURLList_ImplementsFlagValue verifies URLList satisfies flag.Value.
func TestURLList_ImplementsFlagValue(t *testing.T) {
	var _ flag.Value = (*URLList)(nil)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "repeated url flag",
			args: []string{"-url", "https://a/?1#k1", "-url", "https://a/?2#k2"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, []string{"https://a/?1#k1", "https://a/?2#k2"}, cfg.Input.URLs)
			},
		},
		{
			name: "bare arguments are urls",
			args: []string{"-force", "https://a/?1#k1", "https://a/?2#k2"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.True(t, cfg.Input.Force)
				assert.Equal(t, []string{"https://a/?1#k1", "https://a/?2#k2"}, cfg.Input.URLs)
			},
		},
		{
			name: "key and id",
			args: []string{"-key", "SKYwGaZwZmRbN2fR4R9QQJzLTmzpctbDE7kZNpwesRW", "-id", "225484ced69df1d1"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "SKYwGaZwZmRbN2fR4R9QQJzLTmzpctbDE7kZNpwesRW", cfg.Input.Key)
				assert.Equal(t, "225484ced69df1d1", cfg.Input.PasteID)
			},
		},
		{
			name: "short and long output dir",
			args: []string{"-output-dir", "/tmp/out"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/out", cfg.Storage.OutputDir)
			},
		},
		{
			name: "adapter flags",
			args: []string{
				"-backend", "file",
				"-envelope-dir", "/var/envelopes",
				"-base-url", "https://paste.example.org/",
				"-request-timeout", "10s",
				"-retry-count", "7",
			},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "file", cfg.Adapter.Backend)
				assert.Equal(t, "/var/envelopes", cfg.Adapter.EnvelopeDir)
				assert.Equal(t, "https://paste.example.org/", cfg.Adapter.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 7, cfg.Adapter.RetryCount)
			},
		},
		{
			name: "app, storage and worker flags",
			args: []string{
				"-log-level", "debug",
				"-max-inflate-size", "1024",
				"-d", "/tmp/history.db",
				"-concurrency", "3",
				"-c", "/etc/decryptor.json",
			},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "debug", cfg.App.LogLevel)
				assert.Equal(t, int64(1024), cfg.App.MaxInflateSize)
				assert.Equal(t, "/tmp/history.db", cfg.Storage.DB.DSN)
				assert.Equal(t, 3, cfg.Workers.Concurrency)
				assert.Equal(t, "/etc/decryptor.json", cfg.JSONFilePath)
			},
		},
		{
			name: "input switches",
			args: []string{"-from-clipboard", "-history", "-version"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.True(t, cfg.Input.FromClipboard)
				assert.True(t, cfg.Input.ShowHistory)
				assert.True(t, cfg.Input.ShowVersion)
				assert.False(t, cfg.Input.Force)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.assert(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "invalid duration", args: []string{"-request-timeout", "soon"}},
		{name: "invalid integer", args: []string{"-concurrency", "many"}},
		{name: "empty url", args: []string{"-url", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, _, err := parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseFlags_ExplicitSettings(t *testing.T) {
	_, explicit, err := parseFlags([]string{"-retry-count", "0", "-concurrency", "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"retry-count"}, explicit)

	_, explicit, err = parseFlags([]string{"-o", "/tmp"})
	require.NoError(t, err)
	assert.Empty(t, explicit)
}
