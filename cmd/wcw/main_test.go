package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wcw/internal/app"
	"go.trai.ch/wcw/internal/core/domain"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
		stderr       string
	}{
		{
			name:         "list on empty workspace",
			args:         []string{"list"},
			expectedExit: 0,
		},
		{
			name:         "update on empty workspace",
			args:         []string{"update"},
			expectedExit: 0,
		},
		{
			name:         "not implemented",
			args:         []string{"rebase"},
			expectedExit: 1,
		},
		{
			name:         "invalid config",
			config:       "version: \"1\"\nfailure_policy: sometimes\n",
			args:         []string{"list"},
			expectedExit: 1,
			stderr:       "Error: ",
		},
		{
			name:         "unknown config key",
			config:       "version: \"1\"\ntasks: {}\n",
			args:         []string{"list"},
			expectedExit: 1,
			stderr:       "Error: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graft.ResetDefaultCache()
			t.Cleanup(graft.ResetDefaultCache)

			root := t.TempDir()
			t.Chdir(root)
			t.Setenv("NO_COLOR", "1")
			if tt.config != "" {
				require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte(tt.config), 0o600))
			}

			var stdout, stderr bytes.Buffer
			exitCode := run(context.Background(), tt.args, &stdout, &stderr, provideComponents)

			assert.Equal(t, tt.expectedExit, exitCode)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}

func TestRun_ProviderError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run(context.Background(), []string{"list"}, &stdout, &stderr,
		func(context.Context) (*app.Components, func(), error) {
			return nil, nil, errors.New("store locked")
		})

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: store locked\n", stderr.String())
}
