package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"
)

const (
	ConnectionTimeout         = time.Second
	DefaultHealthCheckTimeout = 30 * ConnectionTimeout
)

// TestEnv points the suite at a running hotel-api with admin endpoints on.
type TestEnv struct {
	ServerURL  string
	ServerPort string
}

func NewTestEnv() *TestEnv {
	serverPort := getEnv("TEST_SERVER_PORT", "8080")
	serverURL := getEnv("TEST_SERVER_URL", fmt.Sprintf("http://localhost:%s", serverPort))

	return &TestEnv{
		ServerURL:  serverURL,
		ServerPort: serverPort,
	}
}

// Setup waits for the service, wipes it and loads the seed data.
func (e *TestEnv) Setup(t *testing.T) *Client {
	t.Helper()

	client := NewClient(e.ServerURL)
	client.WaitForHealthy(t, DefaultHealthCheckTimeout)
	client.Reset(t)
	client.Seed(t)

	return client
}

func (e *TestEnv) Cleanup(t *testing.T, client *Client) {
	t.Helper()
	if client != nil {
		client.Reset(t)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
