package infra

import (
	"net/http"

	"github.com/secmon-lab/graw/pkg/domain/interfaces"
)

// Clients bundles the external dependencies a supervisor needs to build a
// working monitor.
type Clients struct {
	repoFactory interfaces.RepositoryFactory
	channels    interfaces.ChannelResolver
	crypter     interfaces.Crypter
	tenantStore interfaces.TenantStore
	platform    interfaces.Platform
	httpClient  HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) RepositoryFactory() interfaces.RepositoryFactory {
	return x.repoFactory
}
func (x *Clients) ChannelResolver() interfaces.ChannelResolver {
	return x.channels
}
func (x *Clients) Crypter() interfaces.Crypter {
	return x.crypter
}
func (x *Clients) TenantStore() interfaces.TenantStore {
	return x.tenantStore
}
func (x *Clients) Platform() interfaces.Platform {
	return x.platform
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithRepositoryFactory(factory interfaces.RepositoryFactory) Option {
	return func(x *Clients) {
		x.repoFactory = factory
	}
}

func WithChannelResolver(resolver interfaces.ChannelResolver) Option {
	return func(x *Clients) {
		x.channels = resolver
	}
}

func WithCrypter(crypter interfaces.Crypter) Option {
	return func(x *Clients) {
		x.crypter = crypter
	}
}

func WithTenantStore(store interfaces.TenantStore) Option {
	return func(x *Clients) {
		x.tenantStore = store
	}
}

func WithPlatform(platform interfaces.Platform) Option {
	return func(x *Clients) {
		x.platform = platform
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
