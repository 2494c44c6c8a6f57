package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	TenantID     string
	UserID       string
	RoleID       string
	ChannelID    string
	RepoPassword string
	BotToken     string
	CryptKey     string
	RequestID    string
	APIToken     string
)

func (x TenantID) String() string  { return string(x) }
func (x ChannelID) String() string { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RepoPassword) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x RepoPassword) String() string {
	return "***********"
}

func (x BotToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x BotToken) String() string {
	return "***********"
}

func (x CryptKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x CryptKey) String() string {
	return "***********"
}

func (x APIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x APIToken) String() string {
	return "***********"
}
