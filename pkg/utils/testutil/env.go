package testutil

import (
	"os"
	"testing"
	"time"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// WaitTimeout bounds WaitUntil.
var WaitTimeout = 2 * time.Second

// WaitUntil polls cond until it holds and fails the test after WaitTimeout.
// Background pollers and schedulers are observed through it.
func WaitUntil(t testing.TB, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(WaitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition was not satisfied in time")
		}
		time.Sleep(time.Millisecond)
	}
}
