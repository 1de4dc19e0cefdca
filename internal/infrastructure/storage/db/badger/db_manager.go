package dbbadger

import (
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

// DbManager holds the badgerhold stores in a single data structure.
type DbManager struct {
	OperationStore *badgerhold.Store

	operationRepository domain.OperationRepository
}

// NewDbManager opens (or creates if not exists) the badger store on disk. It
// expects a base data dir and an optional logger.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	operationDb, err := createDb(filepath.Join(baseDbDir, "operations"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening operations db: %w", err)
	}

	return &DbManager{
		OperationStore:      operationDb,
		operationRepository: NewOperationRepositoryImpl(operationDb),
	}, nil
}

// OperationRepository returns the operation history repository.
func (d *DbManager) OperationRepository() domain.OperationRepository {
	return d.operationRepository
}

// Close closes the underlying stores.
func (d *DbManager) Close() error {
	return d.OperationStore.Close()
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	opts.Compression = 0

	return badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
