package repositories

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const connectionPrefix = "conn:"

var _ contract.IConnectionRegistry = (*ConnectionRepository)(nil)

type ConnectionRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewConnectionRepository(db *badger.DB, log *slog.Logger) *ConnectionRepository {
	return &ConnectionRepository{db: db, log: log, now: time.Now}
}

func connectionKey(id domain.ConnectionID) []byte {
	return []byte(connectionPrefix + string(id))
}

// Register stores the connection under "conn:{id}".
// Registering twice overwrites the record, the connection time is refreshed.
func (c *ConnectionRepository) Register(id domain.ConnectionID) error {
	bytes, err := proto.Marshal(timestamppb.New(c.now().UTC()))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStorage, err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(connectionKey(id), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: register %s: %w", errors.ErrStorage, id, err)
	}
	return nil
}

// Unregister deletes the record. Deleting a missing key is not an error.
func (c *ConnectionRepository) Unregister(id domain.ConnectionID) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(connectionKey(id))
	})
	if err != nil {
		return fmt.Errorf("%w: unregister %s: %w", errors.ErrStorage, id, err)
	}
	return nil
}

// ListAll scans the "conn:" prefix. Only keys are read.
func (c *ConnectionRepository) ListAll() ([]domain.ConnectionID, error) {
	var ids []domain.ConnectionID
	err := c.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(connectionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, domain.ConnectionID(strings.TrimPrefix(key, connectionPrefix)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list connections: %w", errors.ErrStorage, err)
	}
	c.log.Debug("Connections listed", "count", len(ids))
	return ids, nil
}

// Get returns the full record, used by the inspector.
func (c *ConnectionRepository) Get(id domain.ConnectionID) (domain.Connection, bool, error) {
	var connection domain.Connection
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(connectionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			at, err := decodeConnection(val)
			if err != nil {
				return err
			}
			connection = domain.Connection{ID: id, ConnectedAt: at}
			found = true
			return nil
		})
	})
	if err != nil {
		return domain.Connection{}, false, fmt.Errorf("%w: get connection %s: %w", errors.ErrStorage, id, err)
	}
	return connection, found, nil
}

func decodeConnection(val []byte) (time.Time, error) {
	var ts timestamppb.Timestamp
	if err := proto.Unmarshal(val, &ts); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime().UTC(), nil
}
