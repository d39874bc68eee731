package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args    []string
		cmd     string
		steps   int
		wantErr bool
	}{
		{args: []string{"up"}, cmd: "up"},
		{args: []string{"down"}, cmd: "down"},
		{args: []string{"version"}, cmd: "version"},
		{args: []string{"steps", "2"}, cmd: "steps", steps: 2},
		{args: []string{"steps", "-1"}, cmd: "steps", steps: -1},
		{args: nil, wantErr: true},
		{args: []string{"sideways"}, wantErr: true},
		{args: []string{"up", "now"}, wantErr: true},
		{args: []string{"steps"}, wantErr: true},
		{args: []string{"steps", "0"}, wantErr: true},
		{args: []string{"steps", "many"}, wantErr: true},
	}

	for _, tt := range tests {
		cmd, steps, err := parseArgs(tt.args)
		if tt.wantErr {
			require.Error(t, err, "%v", tt.args)
			continue
		}
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.cmd, cmd)
		assert.Equal(t, tt.steps, steps)
	}
}
