package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Asegura que TxRunner implementa repository.TxRunner.
var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es el único camino para el patrón "mutación + bitácora".
func (r *TxRunner) Run(ctx context.Context, fn func(repository.Atomic) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	atomic := repository.Atomic{
		Users:         NewUserRepository(tx),
		Companies:     NewCompanyRepository(tx),
		Memberships:   NewMembershipRepository(tx),
		Assets:        NewAssetRepository(tx),
		Contracts:     NewContractRepository(tx),
		Licenses:      NewLicenseRepository(tx),
		Maintenance:   NewMaintenanceRepository(tx),
		Activity:      NewActivityRepository(tx),
		Notifications: NewNotificationRepository(tx),
		Support:       NewSupportRepository(tx),
	}

	if err := fn(atomic); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
