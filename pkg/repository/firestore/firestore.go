package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionTenant = "tenant"

type tenantStore struct {
	client *firestore.Client
}

var _ interfaces.TenantStore = (*tenantStore)(nil)

// tenantDoc is the layout of a tenant document. The config and the last
// revision are written independently with field-level merges.
type tenantDoc struct {
	Config       *model.TenantConfig `firestore:"config"`
	LastRevision int64               `firestore:"last_revision"`
}

// New creates a new Firestore-based tenant store
func New(ctx context.Context, projectID, databaseID string) (interfaces.TenantStore, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &tenantStore{
		client: client,
	}, nil
}

// ToFirestoreID validates a tenant ID for use as a document ID
func ToFirestoreID(id types.TenantID) (string, error) {
	if id == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "tenant ID is empty")
	}
	if strings.Contains(string(id), "/") || id == "." || id == ".." {
		return "", goerr.Wrap(repository.ErrInvalidInput, "tenant ID is not a valid document ID",
			goerr.V("tenant_id", id),
		)
	}
	return string(id), nil
}

func (r *tenantStore) doc(id types.TenantID) (*firestore.DocumentRef, error) {
	docID, err := ToFirestoreID(id)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(collectionTenant).Doc(docID), nil
}

func (r *tenantStore) load(ctx context.Context, id types.TenantID) (*tenantDoc, error) {
	ref, err := r.doc(id)
	if err != nil {
		return nil, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &tenantDoc{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get tenant document", goerr.V("tenant_id", id))
	}

	var doc tenantDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode tenant document", goerr.V("tenant_id", id))
	}
	return &doc, nil
}

func (r *tenantStore) LoadConfig(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
	doc, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.Config, nil
}

func (r *tenantStore) SwapConfig(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error) {
	if cfg == nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "config is nil", goerr.V("tenant_id", id))
	}

	ref, err := r.doc(id)
	if err != nil {
		return nil, err
	}

	var old *model.TenantConfig
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// The function may run more than once on contention.
		old = nil

		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get tenant document")
		}
		if err == nil {
			var doc tenantDoc
			if err := snap.DataTo(&doc); err != nil {
				return goerr.Wrap(err, "failed to decode tenant document")
			}
			old = doc.Config
		}

		return tx.Set(ref, map[string]any{"config": cfg}, firestore.Merge(firestore.FieldPath{"config"}))
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to swap tenant config", goerr.V("tenant_id", id))
	}

	return old, nil
}

func (r *tenantStore) LoadLastRevision(ctx context.Context, id types.TenantID) (int64, error) {
	doc, err := r.load(ctx, id)
	if err != nil {
		return 0, err
	}
	return doc.LastRevision, nil
}

func (r *tenantStore) StoreLastRevision(ctx context.Context, id types.TenantID, rev int64) error {
	ref, err := r.doc(id)
	if err != nil {
		return err
	}

	if _, err := ref.Set(ctx, map[string]any{"last_revision": rev}, firestore.MergeAll); err != nil {
		return goerr.Wrap(err, "failed to store last revision",
			goerr.V("tenant_id", id),
			goerr.V("revision", rev),
		)
	}
	return nil
}
