package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/invoicing/repository/drafts"
	"encore.app/invoicing/repository/fees"
	"encore.app/invoicing/repository/snapshots"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Drafts    drafts.Querier
	Fees      fees.Querier
	Snapshots snapshots.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Drafts:    drafts.New(db),
		Fees:      fees.New(db),
		Snapshots: snapshots.New(db),
	}
}
