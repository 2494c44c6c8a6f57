package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

func ptr[T any](v T) *T { return &v }

func TestConfigPatchApply(t *testing.T) {
	cfg := model.DefaultTenantConfig()
	cfg.Username = "alice"
	cfg.Password = []byte("encrypted")

	patch := &model.ConfigPatch{
		RepoURL:      ptr("svn://example.com/repo"),
		PollInterval: ptr(60),
		Channel:      ptr(types.ChannelID("c1")),
		Responsive:   ptr(false),
		Password:     ptr(types.RepoPassword("ignored")),
	}
	next := gt.R1(patch.Apply(cfg)).NoError(t)

	gt.V(t, next.RepoURL).Equal("svn://example.com/repo")
	gt.V(t, next.PollInterval).Equal(60)
	gt.V(t, next.Channel).Equal(types.ChannelID("c1"))
	gt.False(t, next.Responsive)
	gt.V(t, next.Username).Equal("alice")
	gt.V(t, next.Password).Equal([]byte("encrypted"))
	gt.V(t, next.DateFormat).Equal(model.DefaultDateFormat)

	// the source is untouched
	gt.V(t, cfg.RepoURL).Equal("")
	gt.True(t, cfg.Responsive)
}

func TestConfigPatchRejectsInterval(t *testing.T) {
	for _, interval := range []int{0, -5} {
		patch := &model.ConfigPatch{PollInterval: ptr(interval)}
		_, err := patch.Apply(model.DefaultTenantConfig())
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	}
}
