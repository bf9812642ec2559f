// Package qsstore serves QuickSight operations from a local BadgerDB database.
//
// Store satisfies qsiface.API, so code written against the interface runs
// unchanged without the remote service. Resources are kept as JSON documents and
// every operation runs in one Badger transaction. Nothing is ever ingested or
// rendered: ingestions stay QUEUED until cancelled, and embed URLs point nowhere.
package qsstore

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/qsight/quicksight/qsiface"
)

// Store is a QuickSight-compatible store backed by BadgerDB.
type Store struct {
	db     *badger.DB
	region string
	now    func() time.Time
}

var _ qsiface.API = &Store{}

// StoreOptions configures the BadgerDB store.
type StoreOptions struct {
	// Path to the database directory. If empty, uses in-memory mode.
	Path string
	// InMemory forces in-memory mode even if Path is set.
	InMemory bool
	// Logger for BadgerDB. If nil, logging is disabled.
	Logger badger.Logger
	// Region appears in the ARNs of stored resources. Defaults to us-east-1.
	Region string
}

const defaultRegion = "us-east-1"

// New creates a new BadgerDB-backed QuickSight store.
func New(opts StoreOptions) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)

	if opts.Path == "" || opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}

	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(opts.Logger)
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	region := opts.Region
	if region == "" {
		region = defaultRegion
	}
	return &Store{
		db:     db,
		region: region,
		now:    time.Now,
	}, nil
}

// Close closes the BadgerDB database.
func (s *Store) Close() error {
	return s.db.Close()
}

// arn builds the ARN of a resource owned by account.
func (s *Store) arn(account, resource string) string {
	return fmt.Sprintf("arn:aws:quicksight:%s:%s:%s", s.region, account, resource)
}

// Region returns the region used in the ARNs of stored resources.
func (s *Store) Region() string {
	return s.region
}
