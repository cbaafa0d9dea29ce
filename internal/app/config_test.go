package app

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "maze path", cfg: Config{MazePath: "mazes"}},
		{name: "generate", cfg: Config{Generate: "21x11"}},
		{name: "nothing", cfg: Config{}, wantErr: "a maze path or -generate is required"},
		{name: "both", cfg: Config{MazePath: "m", Generate: "9x9"}, wantErr: "cannot be combined"},
		{name: "bad size", cfg: Config{Generate: "3x3"}, wantErr: "minimum is 5x5"},
		{name: "name with generate", cfg: Config{Generate: "9x9", Name: "x"}, wantErr: "-name only applies"},
		{name: "bad port", cfg: Config{MazePath: "m", HealthcheckPort: 70000}, wantErr: "invalid healthcheck port"},
		{name: "bad level", cfg: Config{MazePath: "m", LogLevel: "loud"}, wantErr: "invalid log level"},
		{name: "bad format", cfg: Config{MazePath: "m", LogFormat: "xml"}, wantErr: "invalid log format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *cfg)
		})
	}
}

func TestForkAfterFor(t *testing.T) {
	three := 3
	testCases := []struct {
		name     string
		flag     int
		manifest *int
		want     int
	}{
		{name: "default", flag: -1, want: DefaultForkAfter},
		{name: "manifest", flag: -1, manifest: &three, want: 3},
		{name: "flag wins", flag: 7, manifest: &three, want: 7},
		{name: "flag zero disables forking", flag: 0, manifest: &three, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{ForkAfter: tc.flag}
			assert.Equal(t, tc.want, c.forkAfterFor(tc.manifest))
		})
	}
}
