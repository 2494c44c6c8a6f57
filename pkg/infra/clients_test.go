package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/domain/mock"
	"github.com/secmon-lab/graw/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.True(t, clients.RepositoryFactory() == nil)
		gt.True(t, clients.ChannelResolver() == nil)
		gt.True(t, clients.Crypter() == nil)
		gt.True(t, clients.TenantStore() == nil)
		gt.True(t, clients.Platform() == nil)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		factory := &mock.RepositoryFactoryMock{}
		resolver := &mock.ChannelResolverMock{}
		crypter := &mock.CrypterMock{}
		store := &mock.TenantStoreMock{}
		platform := &mock.PlatformMock{}

		clients := infra.New(
			infra.WithRepositoryFactory(factory),
			infra.WithChannelResolver(resolver),
			infra.WithCrypter(crypter),
			infra.WithTenantStore(store),
			infra.WithPlatform(platform),
		)

		gt.V(t, clients.RepositoryFactory()).Equal(factory)
		gt.V(t, clients.ChannelResolver()).Equal(resolver)
		gt.V(t, clients.Crypter()).Equal(crypter)
		gt.V(t, clients.TenantStore()).Equal(store)
		gt.V(t, clients.Platform()).Equal(platform)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
