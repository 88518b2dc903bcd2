package app

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheckServer_ServesAndShutsDown(t *testing.T) {
	// --- Arrange ---
	path := writeProcedure(t, `procedure "p" {
  step "a" {
    check = "true"
  }
}`)
	cfg, err := NewConfig(Config{ProcedurePath: path, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)
	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, nil)

	// --- Act ---
	// Port 0 binds a free port so the test never collides.
	ctx := context.Background()
	a.startHealthcheckServer(ctx, 0)
	require.NotEmpty(t, a.HealthcheckAddr())

	_, port, err := net.SplitHostPort(a.HealthcheckAddr())
	require.NoError(t, err)
	url := "http://127.0.0.1:" + port + "/health"

	resp, err := http.Get(url)

	// --- Assert ---
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", string(body))

	// --- Act: shutdown closes the listener ---
	a.stopHealthcheckServer(ctx)

	client := &http.Client{Timeout: 500 * time.Millisecond}
	_, err = client.Get(url)
	require.Error(t, err, "the endpoint must be gone once the run is over")
}
