package main

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"medialert/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, port string) *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: port},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "medialert.db")},
		Auth:     config.AuthConfig{JWTSecret: "s3cret", TokenTTL: time.Hour},
		Alert: config.AlertConfig{
			PollSpec:     "0,30 * * * * *",
			ToneInterval: time.Second,
			Timezone:     "UTC",
			Quiet:        true,
		},
		OpenAI: config.OpenAIConfig{RatePerMinute: 5},
		Log:    config.LogConfig{Level: "error", Format: "json"},
	}
}

func TestServeFailsWhenPortIsTaken(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = serve(ctx, testConfig(t, port))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, testConfig(t, "0")) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
