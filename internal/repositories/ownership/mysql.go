package ownership

import (
	"context"
	"strings"
	"time"

	// registers the "mysql" driver with database/sql
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
)

// Schema creates the table the MySQL repository reads and writes
const Schema = `CREATE TABLE IF NOT EXISTS essence_ownership (
	player_id VARCHAR(128) NOT NULL,
	item_name VARCHAR(255) NOT NULL,
	owned BOOLEAN NOT NULL DEFAULT FALSE,
	done BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (player_id, item_name)
)`

// MySQLConfig holds the configuration for the MySQL repository
type MySQLConfig struct {
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// CreateSchema runs Schema on startup
	CreateSchema bool
}

// Validate ensures the DSN is present and pool sizes are sane
func (c *MySQLConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dsn", c.DSN, vb)
	if c.MaxOpenConns < 0 {
		vb.Field("max_open_conns", "must not be negative")
	}
	if c.MaxIdleConns < 0 {
		vb.Field("max_idle_conns", "must not be negative")
	}
	return vb.Build()
}

type ownershipRow struct {
	PlayerID string `db:"player_id"`
	ItemName string `db:"item_name"`
	Owned    bool   `db:"owned"`
	Done     bool   `db:"done"`
}

type mysqlRepository struct {
	db *sqlx.DB
}

// NewMySQLRepository opens a pooled connection and pings it
func NewMySQLRepository(ctx context.Context, cfg *MySQLConfig) (Repository, func() error, error) {
	if cfg == nil {
		return nil, nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid config")
	}

	db, err := sqlx.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open mysql")
	}

	maxOpen, maxIdle, lifetime := cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime
	if maxOpen == 0 {
		maxOpen = 32
	}
	if maxIdle == 0 {
		maxIdle = 8
	}
	if lifetime == 0 {
		lifetime = 4 * time.Minute
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(lifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach mysql")
	}

	if cfg.CreateSchema {
		if _, err := db.ExecContext(ctx, Schema); err != nil {
			_ = db.Close()
			return nil, nil, errors.Wrap(err, "failed to create ownership schema")
		}
	}

	return &mysqlRepository{db: db}, db.Close, nil
}

var _ Repository = (*mysqlRepository)(nil)

func (r *mysqlRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	var rows []ownershipRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT player_id, item_name, owned, done FROM essence_ownership WHERE player_id = ?`,
		input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load ownership for %s", input.PlayerID)
	}

	state := entities.NewOwnershipState(input.PlayerID)
	for _, row := range rows {
		state.Set(row.ItemName, row.Owned, row.Done)
	}
	return &GetOutput{State: state}, nil
}

func (r *mysqlRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	playerID := input.State.PlayerID
	if strings.TrimSpace(playerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	flagged := flaggedNames(input.State)
	rows := make([]ownershipRow, 0, len(flagged))
	for name, done := range flagged {
		rows = append(rows, ownershipRow{PlayerID: playerID, ItemName: name, Owned: true, Done: done})
	}

	err := r.tx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM essence_ownership WHERE player_id = ?`, playerID); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := tx.NamedExecContext(ctx,
			`INSERT INTO essence_ownership (player_id, item_name, owned, done)
			VALUES (:player_id, :item_name, :owned, :done)`, rows)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save ownership for %s", playerID)
	}

	return &SaveOutput{Entries: len(rows)}, nil
}

func (r *mysqlRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM essence_ownership WHERE player_id = ?`, input.PlayerID); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ownership for %s", input.PlayerID)
	}
	return &DeleteOutput{}, nil
}

func (r *mysqlRepository) tx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
