package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . RepositoryClient RepositoryFactory OutputChannel ChannelResolver Crypter Platform Messenger

import (
	"context"
	"net/url"

	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

// RepositoryClient is a connection to one external repository. TestConnection
// returns nil on success, an error wrapping types.ErrAuthFailure when the
// credentials are rejected, and any other error for a connection failure.
type RepositoryClient interface {
	TestConnection(ctx context.Context) error
	LatestRevision(ctx context.Context) (int64, error)
	Revision(ctx context.Context, number int64) (*model.RevisionRecord, error)
}

type RepositoryFactory interface {
	NewClient(repoURL *url.URL, username string, password types.RepoPassword) (RepositoryClient, error)
}

// OutputChannel is a fire-and-forget message sink. A returned error is only
// logged by callers.
type OutputChannel interface {
	SendMessage(ctx context.Context, text string) error
}

// ChannelResolver returns the channel for the ID, or nil if the platform
// does not know such a channel.
type ChannelResolver interface {
	Channel(ctx context.Context, id types.ChannelID) (OutputChannel, error)
}

type Crypter interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Platform provides live lookups against the chat platform hosting the
// tenants.
type Platform interface {
	OwnerID(ctx context.Context, tenantID types.TenantID) (types.UserID, error)
	MemberRoles(ctx context.Context, tenantID types.TenantID, userID types.UserID) ([]types.RoleID, error)
}

// Messenger sends bot messages outside of a monitor, such as command replies
// and maintenance of the bot profile.
type Messenger interface {
	Send(ctx context.Context, channelID types.ChannelID, text string) error
	SetAvatar(ctx context.Context, image []byte, contentType string) error
}
