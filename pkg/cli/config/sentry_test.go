package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	var s config.Sentry
	names := map[string]bool{}
	for _, flag := range s.Flags() {
		names[flag.Names()[0]] = true
	}

	gt.V(t, len(names)).Equal(3)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])
}

func TestSentryWithoutDSN(t *testing.T) {
	var s config.Sentry
	parse(t, s.Flags(), "--sentry-env", "test")

	gt.NoError(t, s.Configure(context.Background()))
	gt.True(t, s.Flush(time.Millisecond))
}
