package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

// TestAll runs all test cases for TenantStore
// This is the main entry point for testing any TenantStore implementation
func TestAll(t *testing.T, store interfaces.TenantStore) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		TestConfigNotFound(t, store)
	})
	t.Run("SwapConfig", func(t *testing.T) {
		TestSwapConfig(t, store)
	})
	t.Run("ConfigIsolation", func(t *testing.T) {
		TestConfigIsolation(t, store)
	})
	t.Run("ConcurrentSwap", func(t *testing.T) {
		TestConcurrentSwap(t, store)
	})
	t.Run("LastRevision", func(t *testing.T) {
		TestLastRevision(t, store)
	})
}

func newTenantID() types.TenantID {
	return types.TenantID(fmt.Sprintf("tenant-%s", uuid.New().String()[:8]))
}

func sampleConfig() *model.TenantConfig {
	cfg := model.DefaultTenantConfig()
	cfg.RepoURL = "svn://svn.example.com/project/trunk"
	cfg.Username = "bot"
	cfg.Password = []byte{0x00, 0x01, 0xfe, 0xff}
	cfg.Channel = "123456789"
	cfg.MaintainerRole = "987654321"
	return cfg
}

// TestConfigNotFound checks that an unknown tenant yields no config
func TestConfigNotFound(t *testing.T, store interfaces.TenantStore) {
	ctx := context.Background()

	cfg, err := store.LoadConfig(ctx, newTenantID())
	gt.NoError(t, err)
	gt.True(t, cfg == nil)
}

// TestSwapConfig checks that a swap returns the previous config and stores the new one
func TestSwapConfig(t *testing.T, store interfaces.TenantStore) {
	ctx := context.Background()
	id := newTenantID()

	first := sampleConfig()
	old, err := store.SwapConfig(ctx, id, first)
	gt.NoError(t, err)
	gt.True(t, old == nil)

	loaded, err := store.LoadConfig(ctx, id)
	gt.NoError(t, err)
	gt.V(t, loaded).Equal(first)

	second := sampleConfig()
	second.PollInterval = 30
	second.Responsive = false
	second.Password = nil
	second.MessageTemplate = "{{rnum}}"

	old, err = store.SwapConfig(ctx, id, second)
	gt.NoError(t, err)
	gt.V(t, old).Equal(first)

	loaded, err = store.LoadConfig(ctx, id)
	gt.NoError(t, err)
	gt.V(t, loaded.PollInterval).Equal(30)
	gt.False(t, loaded.Responsive)
	gt.A(t, loaded.Password).Length(0)
	gt.V(t, loaded.MessageTemplate).Equal("{{rnum}}")
}

// TestConfigIsolation checks that stored and returned values are not shared with the caller
func TestConfigIsolation(t *testing.T, store interfaces.TenantStore) {
	ctx := context.Background()
	id := newTenantID()

	cfg := sampleConfig()
	_, err := store.SwapConfig(ctx, id, cfg)
	gt.NoError(t, err)

	cfg.Password[0] = 0x42
	cfg.RepoURL = "changed"

	loaded, err := store.LoadConfig(ctx, id)
	gt.NoError(t, err)
	gt.V(t, loaded.Password[0]).Equal(byte(0x00))
	gt.V(t, loaded.RepoURL).Equal("svn://svn.example.com/project/trunk")
}

// TestConcurrentSwap checks that each swap observes exactly one previous value
func TestConcurrentSwap(t *testing.T, store interfaces.TenantStore) {
	ctx := context.Background()
	id := newTenantID()

	const n = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	var nilCount int
	olds := map[int]int{}

	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(interval int) {
			defer wg.Done()
			cfg := sampleConfig()
			cfg.PollInterval = interval
			old, err := store.SwapConfig(ctx, id, cfg)
			gt.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			if old == nil {
				nilCount++
			} else {
				olds[old.PollInterval]++
			}
		}(i)
	}
	wg.Wait()

	// One swap found nothing; every other swap replaced a distinct value.
	gt.V(t, nilCount).Equal(1)
	gt.V(t, len(olds)).Equal(n - 1)
	for _, count := range olds {
		gt.V(t, count).Equal(1)
	}
}

// TestLastRevision checks the last revision defaults to 0 and can be overwritten
func TestLastRevision(t *testing.T, store interfaces.TenantStore) {
	ctx := context.Background()
	id := newTenantID()

	rev, err := store.LoadLastRevision(ctx, id)
	gt.NoError(t, err)
	gt.V(t, rev).Equal(int64(0))

	gt.NoError(t, store.StoreLastRevision(ctx, id, 42))
	rev, err = store.LoadLastRevision(ctx, id)
	gt.NoError(t, err)
	gt.V(t, rev).Equal(int64(42))

	gt.NoError(t, store.StoreLastRevision(ctx, id, 7))
	rev, err = store.LoadLastRevision(ctx, id)
	gt.NoError(t, err)
	gt.V(t, rev).Equal(int64(7))

	// Storing a revision does not create a config.
	cfg, err := store.LoadConfig(ctx, id)
	gt.NoError(t, err)
	gt.True(t, cfg == nil)

	// Storing a config keeps the revision.
	_, err = store.SwapConfig(ctx, id, sampleConfig())
	gt.NoError(t, err)
	rev, err = store.LoadLastRevision(ctx, id)
	gt.NoError(t, err)
	gt.V(t, rev).Equal(int64(7))
}
