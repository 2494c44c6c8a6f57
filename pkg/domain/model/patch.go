package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

// ConfigPatch is a partial update of a TenantConfig. Nil fields are left
// unchanged. Password is plaintext; an empty password clears the stored one.
type ConfigPatch struct {
	RepoURL         *string             `json:"repo_url,omitempty"`
	Username        *string             `json:"username,omitempty"`
	Password        *types.RepoPassword `json:"password,omitempty" masq:"secret"`
	PollInterval    *int                `json:"poll_interval,omitempty"`
	Channel         *types.ChannelID    `json:"channel_id,omitempty"`
	MaintainerRole  *types.RoleID       `json:"maintainer_role,omitempty"`
	Responsive      *bool               `json:"responsive,omitempty"`
	DateFormat      *string             `json:"date_format,omitempty"`
	MessageTemplate *string             `json:"message_template,omitempty"`
}

func (x *ConfigPatch) Validate() error {
	if x.PollInterval != nil && *x.PollInterval < 1 {
		return goerr.Wrap(types.ErrValidationFailed, "poll interval must be positive", goerr.V("poll_interval", *x.PollInterval))
	}
	return nil
}

// Apply returns a copy of cfg with every field of the patch except the
// password overwritten.
func (x *ConfigPatch) Apply(cfg *TenantConfig) (*TenantConfig, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	next := cfg.Copy()
	if x.RepoURL != nil {
		next.RepoURL = *x.RepoURL
	}
	if x.Username != nil {
		next.Username = *x.Username
	}
	if x.PollInterval != nil {
		next.PollInterval = *x.PollInterval
	}
	if x.Channel != nil {
		next.Channel = *x.Channel
	}
	if x.MaintainerRole != nil {
		next.MaintainerRole = *x.MaintainerRole
	}
	if x.Responsive != nil {
		next.Responsive = *x.Responsive
	}
	if x.DateFormat != nil {
		next.DateFormat = *x.DateFormat
	}
	if x.MessageTemplate != nil {
		next.MessageTemplate = *x.MessageTemplate
	}
	return next, nil
}
