package boltdb

import (
	"fmt"

	portsrepo "github.com/SscSPs/paluwagan_app/internal/core/ports/repositories"
	bolt "go.etcd.io/bbolt"
)

// NewRepositoryProvider creates the buckets and wires every bolt repository onto db.
func NewRepositoryProvider(db *bolt.DB) (portsrepo.RepositoryProvider, error) {
	s := &store{db: db}
	if err := s.initBuckets(); err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialise bolt store: %w", err)
	}
	return portsrepo.RepositoryProvider{
		TransactionRepo:  &BoltTransactionRepository{store: s},
		FiscalYearRepo:   &BoltFiscalYearRepository{store: s},
		LinkedMemberRepo: &BoltLinkedMemberRepository{store: s},
	}, nil
}
