package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/repository"
	"github.com/secmon-lab/graw/pkg/utils/logging"
	"github.com/secmon-lab/graw/pkg/utils/safe"

	_ "github.com/lib/pq"
)

type tenantStore struct {
	db *sql.DB
}

var _ interfaces.TenantStore = (*tenantStore)(nil)

// New opens the database, brings its schema up to date and returns a
// PostgreSQL-based tenant store
func New(ctx context.Context, dsn string) (interfaces.TenantStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database")
	}
	if err := db.PingContext(ctx); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to connect database")
	}

	store, err := NewWithDB(ctx, db)
	if err != nil {
		safe.Close(db)
		return nil, err
	}
	return store, nil
}

// NewWithDB migrates db and wraps it as a tenant store
func NewWithDB(ctx context.Context, db *sql.DB) (interfaces.TenantStore, error) {
	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	return &tenantStore{db: db}, nil
}

// migrations[i] upgrades the schema from version i to i+1.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS configs (
		tenant_id        TEXT PRIMARY KEY,
		repo_url         TEXT NOT NULL,
		username         TEXT NOT NULL,
		password         BYTEA,
		poll_interval    INTEGER NOT NULL,
		channel_id       TEXT NOT NULL,
		maintainer_role  TEXT NOT NULL,
		responsive       BOOLEAN NOT NULL,
		date_format      TEXT NOT NULL,
		message_template TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS revisions (
		tenant_id TEXT PRIMARY KEY,
		last_rev  BIGINT NOT NULL
	)`,
}

// SchemaVersion is the version a migrated database reports
var SchemaVersion = len(migrations)

const (
	metaKeyVersion = "version"

	// migrationLockKey serializes concurrent migrations across processes.
	migrationLockKey = 0x67726177
)

// Migrate applies every pending migration in one transaction. A database
// with a newer schema than this build knows is rejected.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin migration")
	}
	defer safe.Rollback(tx)

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockKey); err != nil {
		return goerr.Wrap(err, "failed to lock for migration")
	}
	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS meta_info (
		meta_key   TEXT PRIMARY KEY,
		meta_value TEXT NOT NULL
	)`); err != nil {
		return goerr.Wrap(err, "failed to create meta_info")
	}

	current, err := schemaVersion(ctx, tx)
	if err != nil {
		return err
	}
	if current > len(migrations) {
		return goerr.Wrap(repository.ErrSchema, "database schema is newer than supported",
			goerr.V("current", current),
			goerr.V("supported", len(migrations)),
		)
	}

	for v := current; v < len(migrations); v++ {
		if _, err := tx.ExecContext(ctx, migrations[v]); err != nil {
			return goerr.Wrap(err, "failed to apply migration", goerr.V("version", v+1))
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO meta_info (meta_key, meta_value) VALUES ($1, $2)
		ON CONFLICT (meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value`,
		metaKeyVersion, strconv.Itoa(len(migrations))); err != nil {
		return goerr.Wrap(err, "failed to record schema version")
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit migration")
	}

	if current != len(migrations) {
		logging.Default().Info("database schema migrated",
			slog.Int("from", current),
			slog.Int("to", len(migrations)),
		)
	}
	return nil
}

func schemaVersion(ctx context.Context, tx *sql.Tx) (int, error) {
	var raw string
	err := tx.QueryRowContext(ctx, `SELECT meta_value FROM meta_info WHERE meta_key = $1`, metaKeyVersion).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read schema version")
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.Wrap(repository.ErrSchema, "malformed schema version", goerr.V("value", raw))
	}
	return v, nil
}

const selectConfig = `SELECT repo_url, username, password, poll_interval, channel_id,
	maintainer_role, responsive, date_format, message_template
	FROM configs WHERE tenant_id = $1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*model.TenantConfig, error) {
	var cfg model.TenantConfig
	var channel, role string
	err := row.Scan(
		&cfg.RepoURL,
		&cfg.Username,
		&cfg.Password,
		&cfg.PollInterval,
		&channel,
		&role,
		&cfg.Responsive,
		&cfg.DateFormat,
		&cfg.MessageTemplate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cfg.Channel = types.ChannelID(channel)
	cfg.MaintainerRole = types.RoleID(role)
	return &cfg, nil
}

func (r *tenantStore) LoadConfig(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
	cfg, err := scanConfig(r.db.QueryRowContext(ctx, selectConfig, id))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config", goerr.V("tenant_id", id))
	}
	return cfg, nil
}

// SwapConfig reads and replaces the config in one transaction. A
// transaction-scoped advisory lock on the tenant ID serializes swaps even
// when no row exists yet.
func (r *tenantStore) SwapConfig(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error) {
	if cfg == nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "config is nil", goerr.V("tenant_id", id))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, id); err != nil {
		return nil, goerr.Wrap(err, "failed to lock tenant", goerr.V("tenant_id", id))
	}

	old, err := scanConfig(tx.QueryRowContext(ctx, selectConfig, id))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config", goerr.V("tenant_id", id))
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO configs (tenant_id, repo_url, username, password,
		poll_interval, channel_id, maintainer_role, responsive, date_format, message_template)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tenant_id) DO UPDATE SET
			repo_url = EXCLUDED.repo_url,
			username = EXCLUDED.username,
			password = EXCLUDED.password,
			poll_interval = EXCLUDED.poll_interval,
			channel_id = EXCLUDED.channel_id,
			maintainer_role = EXCLUDED.maintainer_role,
			responsive = EXCLUDED.responsive,
			date_format = EXCLUDED.date_format,
			message_template = EXCLUDED.message_template`,
		id,
		cfg.RepoURL,
		cfg.Username,
		cfg.Password,
		cfg.PollInterval,
		string(cfg.Channel),
		string(cfg.MaintainerRole),
		cfg.Responsive,
		cfg.DateFormat,
		cfg.MessageTemplate,
	); err != nil {
		return nil, goerr.Wrap(err, "failed to store config", goerr.V("tenant_id", id))
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit config", goerr.V("tenant_id", id))
	}
	return old, nil
}

func (r *tenantStore) LoadLastRevision(ctx context.Context, id types.TenantID) (int64, error) {
	var rev int64
	err := r.db.QueryRowContext(ctx, `SELECT last_rev FROM revisions WHERE tenant_id = $1`, id).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, goerr.Wrap(err, "failed to load last revision", goerr.V("tenant_id", id))
	}
	return rev, nil
}

func (r *tenantStore) StoreLastRevision(ctx context.Context, id types.TenantID, rev int64) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO revisions (tenant_id, last_rev) VALUES ($1, $2)
		ON CONFLICT (tenant_id) DO UPDATE SET last_rev = EXCLUDED.last_rev`, id, rev); err != nil {
		return goerr.Wrap(err, "failed to store last revision",
			goerr.V("tenant_id", id),
			goerr.V("revision", rev),
		)
	}
	return nil
}
