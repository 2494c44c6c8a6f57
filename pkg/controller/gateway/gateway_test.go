package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/controller/gateway"
	"github.com/secmon-lab/graw/pkg/domain/mock"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

type fakeTenants struct {
	mu     sync.Mutex
	active map[types.TenantID]bool
	events []string
	admins map[types.UserID]bool
}

func newTenants() *fakeTenants {
	return &fakeTenants{
		active: map[types.TenantID]bool{},
		admins: map[types.UserID]bool{"admin": true},
	}
}

func (x *fakeTenants) ActivateTenant(ctx context.Context, id types.TenantID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.active[id] = true
	x.events = append(x.events, "activate:"+string(id))
}

func (x *fakeTenants) DeactivateTenant(ctx context.Context, id types.TenantID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !x.active[id] {
		panic("deactivating inactive tenant")
	}
	delete(x.active, id)
	x.events = append(x.events, "deactivate:"+string(id))
}

func (x *fakeTenants) IsActive(id types.TenantID) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.active[id]
}

func (x *fakeTenants) CheckManagementPermission(ctx context.Context, tenantID types.TenantID, userID types.UserID) bool {
	return tenantID == "" && x.admins[userID]
}

type fixture struct {
	tenants   *fakeTenants
	uc        *mock.UseCaseMock
	messenger *mock.MessengerMock
	handler   *gateway.Handler
	srv       *httptest.Server
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tenants: newTenants(),
		uc: &mock.UseCaseMock{
			ReplyToCommandFunc: func(ctx context.Context, tenantID types.TenantID, text string) (string, bool) {
				if text == "!svn stat" {
					return "Operating normally", true
				}
				return "", false
			},
		},
		messenger: &mock.MessengerMock{
			SendFunc:      func(ctx context.Context, channelID types.ChannelID, text string) error { return nil },
			SetAvatarFunc: func(ctx context.Context, image []byte, contentType string) error { return nil },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /avatar.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	f.handler = gateway.New(f.tenants, f.uc, f.messenger, f.srv.Client())
	return f
}

func guild(id string) *discordgo.Guild {
	return &discordgo.Guild{ID: id}
}

func message(guildID, author, content string, attachments ...*discordgo.MessageAttachment) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:          "m1",
		GuildID:     guildID,
		ChannelID:   "ch1",
		Content:     content,
		Author:      &discordgo.User{ID: author},
		Attachments: attachments,
	}}
}

func TestGuildLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.handler.OnGuildCreate(ctx, &discordgo.GuildCreate{Guild: guild("g1")})
	// repeated after a reconnect
	f.handler.OnGuildCreate(ctx, &discordgo.GuildCreate{Guild: guild("g1")})
	f.handler.OnGuildCreate(ctx, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "g2", Unavailable: true}})

	f.handler.OnGuildDelete(ctx, &discordgo.GuildDelete{Guild: guild("g1")})
	// never activated
	f.handler.OnGuildDelete(ctx, &discordgo.GuildDelete{Guild: guild("g3")})
	f.handler.OnGuildDelete(ctx, &discordgo.GuildDelete{Guild: guild("g1")})

	gt.V(t, f.tenants.events).Equal([]string{"activate:g1", "deactivate:g1"})
}

func TestConcurrentGuildEvents(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.handler.OnGuildCreate(ctx, &discordgo.GuildCreate{Guild: guild("g1")})
		}()
		go func() {
			defer wg.Done()
			f.handler.OnGuildDelete(ctx, &discordgo.GuildDelete{Guild: guild("g1")})
		}()
	}
	wg.Wait()

	// activations and deactivations alternate, starting with an activation
	for i, ev := range f.tenants.events {
		if i%2 == 0 {
			gt.V(t, ev).Equal("activate:g1")
		} else {
			gt.V(t, ev).Equal("deactivate:g1")
		}
	}
}

func TestGuildCommand(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.handler.OnMessageCreate(ctx, message("g1", "u1", "!svn stat"))
	f.handler.OnMessageCreate(ctx, message("g1", "u1", "hello"))

	bot := message("g1", "u2", "!svn stat")
	bot.Author.Bot = true
	f.handler.OnMessageCreate(ctx, bot)

	gt.A(t, f.uc.ReplyToCommandCalls()).Length(2)
	gt.V(t, f.uc.ReplyToCommandCalls()[0].TenantID).Equal(types.TenantID("g1"))

	sent := f.messenger.SendCalls()
	gt.A(t, sent).Length(1)
	gt.V(t, sent[0].ChannelID).Equal(types.ChannelID("ch1"))
	gt.V(t, sent[0].Text).Equal("Operating normally")
}

func TestSetAvatar(t *testing.T) {
	image := func(f *fixture, name string) *discordgo.MessageAttachment {
		return &discordgo.MessageAttachment{URL: f.srv.URL + "/" + name, Filename: name, ContentType: "image/png"}
	}

	t.Run("super-admin updates avatar", func(t *testing.T) {
		f := setup(t)
		f.handler.OnMessageCreate(context.Background(), message("", "admin", "!setAvatar", image(f, "avatar.png")))

		calls := f.messenger.SetAvatarCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, string(calls[0].Image)).Equal("png-bytes")
		gt.V(t, calls[0].ContentType).Equal("image/png")
		gt.V(t, f.messenger.SendCalls()[0].Text).Equal("Avatar updated")
	})

	t.Run("other users are ignored", func(t *testing.T) {
		f := setup(t)
		f.handler.OnMessageCreate(context.Background(), message("", "u1", "!setAvatar", image(f, "avatar.png")))

		gt.A(t, f.messenger.SetAvatarCalls()).Length(0)
		gt.A(t, f.messenger.SendCalls()).Length(0)
	})

	t.Run("guild messages are not maintenance commands", func(t *testing.T) {
		f := setup(t)
		f.handler.OnMessageCreate(context.Background(), message("g1", "admin", "!setAvatar", image(f, "avatar.png")))

		gt.A(t, f.messenger.SetAvatarCalls()).Length(0)
	})

	t.Run("attachment must be an image", func(t *testing.T) {
		f := setup(t)
		ctx := context.Background()
		f.handler.OnMessageCreate(ctx, message("", "admin", "!setAvatar"))
		f.handler.OnMessageCreate(ctx, message("", "admin", "!setAvatar",
			&discordgo.MessageAttachment{URL: f.srv.URL + "/notes.txt", ContentType: "text/plain"}))

		gt.A(t, f.messenger.SetAvatarCalls()).Length(0)
		sent := f.messenger.SendCalls()
		gt.A(t, sent).Length(2)
		gt.V(t, sent[0].Text).Equal("Please attach an image to the !setAvatar command")
		gt.V(t, sent[1].Text).Equal("Please attach an image to the !setAvatar command")
	})

	t.Run("download failure is reported", func(t *testing.T) {
		f := setup(t)
		f.handler.OnMessageCreate(context.Background(), message("", "admin", "!setAvatar", image(f, "missing.png")))

		gt.A(t, f.messenger.SetAvatarCalls()).Length(0)
		gt.S(t, f.messenger.SendCalls()[0].Text).Contains("Unable to update avatar; ")
	})

	t.Run("platform failure is reported", func(t *testing.T) {
		f := setup(t)
		f.messenger.SetAvatarFunc = func(ctx context.Context, image []byte, contentType string) error {
			return errors.New("rate limited")
		}
		f.handler.OnMessageCreate(context.Background(), message("", "admin", "!setAvatar", image(f, "avatar.png")))

		gt.S(t, f.messenger.SendCalls()[0].Text).Contains("Unable to update avatar; rate limited")
	})
}

func TestRegisterAndRemoveHandlers(t *testing.T) {
	f := setup(t)
	session := gt.R1(discordgo.New("Bot test-token")).NoError(t)

	remove := f.handler.Register(context.Background(), session)
	remove()
}
