// Package discord adapts a discordgo session to the platform interfaces. A
// guild is a tenant and a text channel is an output channel.
package discord

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

const (
	// maxMessageLength is the longest message content Discord accepts.
	maxMessageLength = 2000

	// Intents are the gateway events the bot consumes: guild availability,
	// guild and direct messages, and message content for commands.
	Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent
)

type Client struct {
	session *discordgo.Session
}

var (
	_ interfaces.Platform        = (*Client)(nil)
	_ interfaces.ChannelResolver = (*Client)(nil)
	_ interfaces.Messenger       = (*Client)(nil)
)

type Option func(*discordgo.Session)

// WithHTTPClient replaces the client used for REST requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *discordgo.Session) {
		s.Client = client
	}
}

func New(token types.BotToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bot token is empty")
	}

	session, err := discordgo.New("Bot " + string(token))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to create discord session", goerr.V("error", err.Error()))
	}
	session.Identify.Intents = Intents
	for _, opt := range options {
		opt(session)
	}

	return &Client{session: session}, nil
}

// Session returns the underlying session so that gateway handlers can be
// registered on it.
func (x *Client) Session() *discordgo.Session {
	return x.session
}

// Open connects to the gateway. Guild events start to arrive afterwards.
func (x *Client) Open() error {
	if err := x.session.Open(); err != nil {
		return goerr.Wrap(err, "failed to open discord gateway")
	}
	return nil
}

func (x *Client) Close() error {
	if err := x.session.Close(); err != nil {
		return goerr.Wrap(err, "failed to close discord gateway")
	}
	return nil
}

func (x *Client) OwnerID(ctx context.Context, tenantID types.TenantID) (types.UserID, error) {
	guild, err := x.session.Guild(string(tenantID), discordgo.WithContext(ctx))
	if err != nil {
		return "", wrapError(err, "failed to get guild", goerr.V("tenant_id", tenantID))
	}
	return types.UserID(guild.OwnerID), nil
}

func (x *Client) MemberRoles(ctx context.Context, tenantID types.TenantID, userID types.UserID) ([]types.RoleID, error) {
	member, err := x.session.GuildMember(string(tenantID), string(userID), discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapError(err, "failed to get guild member",
			goerr.V("tenant_id", tenantID), goerr.V("user_id", userID))
	}

	roles := make([]types.RoleID, 0, len(member.Roles))
	for _, role := range member.Roles {
		roles = append(roles, types.RoleID(role))
	}
	return roles, nil
}

// Channel checks that the channel exists and is visible to the bot.
func (x *Client) Channel(ctx context.Context, id types.ChannelID) (interfaces.OutputChannel, error) {
	if id == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "channel ID is empty")
	}

	if _, err := x.session.Channel(string(id), discordgo.WithContext(ctx)); err != nil {
		return nil, wrapError(err, "failed to get channel", goerr.V("channel_id", id))
	}
	return &channel{client: x, id: id}, nil
}

// Send posts text to the channel. Text longer than Discord accepts is
// truncated.
func (x *Client) Send(ctx context.Context, id types.ChannelID, text string) error {
	if _, err := x.session.ChannelMessageSend(string(id), truncate(text, maxMessageLength), discordgo.WithContext(ctx)); err != nil {
		return wrapError(err, "failed to send message", goerr.V("channel_id", id))
	}
	return nil
}

// SetAvatar replaces the bot's avatar with image.
func (x *Client) SetAvatar(ctx context.Context, image []byte, contentType string) error {
	body := map[string]string{
		"avatar": "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image),
	}
	if _, err := x.session.RequestWithBucketID(http.MethodPatch, discordgo.EndpointUser("@me"), body,
		discordgo.EndpointUsers, discordgo.WithContext(ctx)); err != nil {
		return wrapError(err, "failed to update avatar", goerr.V("content_type", contentType))
	}
	return nil
}

type channel struct {
	client *Client
	id     types.ChannelID
}

func (x *channel) SendMessage(ctx context.Context, text string) error {
	return x.client.Send(ctx, x.id, text)
}

func wrapError(err error, msg string, options ...goerr.Option) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		options = append(options, goerr.V("status", restErr.Response.StatusCode))
	}
	options = append(options, goerr.V("error", err.Error()))
	return goerr.Wrap(types.ErrPlatform, msg, options...)
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-1]) + "…"
}
