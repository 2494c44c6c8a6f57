// Package gateway turns Discord gateway events into tenant lifecycle changes
// and chat command replies.
package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"
)

const (
	setAvatarCommand = "!setAvatar"

	// maxAvatarSize bounds the downloaded avatar image.
	maxAvatarSize = 8 * 1024 * 1024

	msgAvatarUpdated = "Avatar updated"
	msgAttachImage   = "Please attach an image to the !setAvatar command"
	msgAvatarFailed  = "Unable to update avatar; "
)

// Tenants is the part of the tenant registry driven by gateway events.
type Tenants interface {
	ActivateTenant(ctx context.Context, id types.TenantID)
	DeactivateTenant(ctx context.Context, id types.TenantID)
	IsActive(id types.TenantID) bool
	CheckManagementPermission(ctx context.Context, tenantID types.TenantID, userID types.UserID) bool
}

type Handler struct {
	tenants    Tenants
	uc         interfaces.UseCase
	messenger  interfaces.Messenger
	httpClient infra.HTTPClient

	// guildMu serializes guild availability events. discordgo delivers
	// events on separate goroutines.
	guildMu sync.Mutex
}

func New(tenants Tenants, uc interfaces.UseCase, messenger interfaces.Messenger, httpClient infra.HTTPClient) *Handler {
	return &Handler{
		tenants:    tenants,
		uc:         uc,
		messenger:  messenger,
		httpClient: httpClient,
	}
}

// Register adds the event handlers to session. Events are handled with ctx
// as their base context. The returned function removes the handlers.
func (x *Handler) Register(ctx context.Context, session *discordgo.Session) func() {
	removers := []func(){
		session.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildCreate) {
			x.OnGuildCreate(ctx, e)
		}),
		session.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildDelete) {
			x.OnGuildDelete(ctx, e)
		}),
		session.AddHandler(func(_ *discordgo.Session, e *discordgo.MessageCreate) {
			x.OnMessageCreate(ctx, e)
		}),
	}

	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// OnGuildCreate activates the guild's tenant. Discord repeats the event
// after a reconnect, so an active tenant is left as is.
func (x *Handler) OnGuildCreate(ctx context.Context, e *discordgo.GuildCreate) {
	if e.Guild == nil || e.Unavailable {
		return
	}
	id := types.TenantID(e.ID)

	x.guildMu.Lock()
	defer x.guildMu.Unlock()

	if x.tenants.IsActive(id) {
		return
	}
	x.tenants.ActivateTenant(ctx, id)
}

// OnGuildDelete deactivates the tenant when the bot leaves the guild or the
// guild becomes unavailable.
func (x *Handler) OnGuildDelete(ctx context.Context, e *discordgo.GuildDelete) {
	if e.Guild == nil {
		return
	}
	id := types.TenantID(e.ID)

	x.guildMu.Lock()
	defer x.guildMu.Unlock()

	if !x.tenants.IsActive(id) {
		return
	}
	x.tenants.DeactivateTenant(ctx, id)
}

// OnMessageCreate answers chat commands in guild channels and maintenance
// commands in direct messages. Messages of bots are ignored.
func (x *Handler) OnMessageCreate(ctx context.Context, e *discordgo.MessageCreate) {
	if e.Message == nil || e.Author == nil || e.Author.Bot {
		return
	}
	channelID := types.ChannelID(e.ChannelID)

	if e.GuildID == "" {
		x.handleDirectMessage(ctx, e.Message)
		return
	}

	tenantID := types.TenantID(e.GuildID)
	ctx = logging.WithTenant(ctx, tenantID)

	reply, ok := x.uc.ReplyToCommand(ctx, tenantID, e.Content)
	if !ok {
		return
	}
	x.send(ctx, channelID, reply)
}

func (x *Handler) handleDirectMessage(ctx context.Context, msg *discordgo.Message) {
	if msg.Content != setAvatarCommand {
		return
	}
	userID := types.UserID(msg.Author.ID)
	if !x.tenants.CheckManagementPermission(ctx, "", userID) {
		logging.From(ctx).Warn("avatar change refused", slog.Any("user_id", userID))
		return
	}
	channelID := types.ChannelID(msg.ChannelID)

	if len(msg.Attachments) == 0 || !isImage(msg.Attachments[0]) {
		x.send(ctx, channelID, msgAttachImage)
		return
	}

	if err := x.updateAvatar(ctx, msg.Attachments[0]); err != nil {
		errutil.HandleError(ctx, "failed to update avatar", err)
		x.send(ctx, channelID, msgAvatarFailed+err.Error())
		return
	}

	logging.From(ctx).Info("avatar updated", slog.Any("user_id", userID))
	x.send(ctx, channelID, msgAvatarUpdated)
}

func (x *Handler) updateAvatar(ctx context.Context, attachment *discordgo.MessageAttachment) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, attachment.URL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build attachment request", goerr.V("url", attachment.URL))
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download attachment", goerr.V("url", attachment.URL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("failed to download attachment",
			goerr.V("url", attachment.URL), goerr.V("status", resp.StatusCode))
	}

	image, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarSize+1))
	if err != nil {
		return goerr.Wrap(err, "failed to read attachment", goerr.V("url", attachment.URL))
	}
	if len(image) > maxAvatarSize {
		return goerr.New("attachment is too large", goerr.V("filename", attachment.Filename))
	}

	return x.messenger.SetAvatar(ctx, image, attachment.ContentType)
}

func (x *Handler) send(ctx context.Context, channelID types.ChannelID, text string) {
	if err := x.messenger.Send(ctx, channelID, text); err != nil {
		logging.From(ctx).Warn("failed to send reply", slog.Any("error", err), slog.Any("channel_id", channelID))
	}
}

func isImage(attachment *discordgo.MessageAttachment) bool {
	return attachment != nil && strings.HasPrefix(attachment.ContentType, "image/")
}
