package model

import (
	"github.com/secmon-lab/graw/pkg/domain/types"
)

const (
	DefaultPollInterval    = 180
	DefaultDateFormat      = "yyyy-MM-dd HH:mm:ss z"
	DefaultMessageTemplate = "**[{{auth}}]** *(r{{rnum}})* @ {{date}}```{{body}}```"
)

// TenantConfig is the monitoring configuration of a single tenant. The
// password is stored encrypted and only decrypted when a monitor is
// configured.
type TenantConfig struct {
	RepoURL         string          `firestore:"repo_url" json:"repo_url"`
	Username        string          `firestore:"username" json:"username"`
	Password        []byte          `firestore:"password" json:"-" masq:"secret"`
	PollInterval    int             `firestore:"poll_interval" json:"poll_interval"`
	Channel         types.ChannelID `firestore:"channel_id" json:"channel_id"`
	MaintainerRole  types.RoleID    `firestore:"maintainer_role" json:"maintainer_role"`
	Responsive      bool            `firestore:"responsive" json:"responsive"`
	DateFormat      string          `firestore:"date_format" json:"date_format"`
	MessageTemplate string          `firestore:"message_template" json:"message_template"`
}

// DefaultTenantConfig returns a fresh configuration with default values
func DefaultTenantConfig() *TenantConfig {
	return &TenantConfig{
		PollInterval:    DefaultPollInterval,
		Responsive:      true,
		DateFormat:      DefaultDateFormat,
		MessageTemplate: DefaultMessageTemplate,
	}
}

// Copy returns a deep copy of the configuration
func (x *TenantConfig) Copy() *TenantConfig {
	if x == nil {
		return nil
	}
	cpy := *x
	if x.Password != nil {
		cpy.Password = make([]byte, len(x.Password))
		copy(cpy.Password, x.Password)
	}
	return &cpy
}
