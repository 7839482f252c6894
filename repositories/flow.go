//go:generate go run go.uber.org/mock/mockgen -source=flow.go -destination=../mocks/mock_flow_repository.go -package=mocks
package repositories

import (
	"bot-chat/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	flowPrefix = "flow:"
	activeKey  = "flow-active"
)

type IFlowRepository interface {
	Save(name string, raw []byte) (FlowDocument, error)
	Get(id uuid.UUID) (FlowDocument, error)
	List() ([]FlowDocument, error)
	Activate(id uuid.UUID) (FlowDocument, error)
	Active() (FlowDocument, error)
}

// FlowDocument is an uploaded flow as it was received. At most one document is active.
type FlowDocument struct {
	ID        uuid.UUID `json:"id"`
	Version   int       `json:"version"`
	Name      string    `json:"name"`
	JSON      string    `json:"json"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type FlowRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewFlowRepository(db *badger.DB, log *slog.Logger) FlowRepository {
	return FlowRepository{db: db, log: log}
}

// Save stores a new document and makes it the active one.
// The key is "flow:{uuid}"; the id of the active document sits under "flow-active".
func (r FlowRepository) Save(name string, raw []byte) (FlowDocument, error) {
	doc := FlowDocument{
		ID:        uuid.New(),
		Name:      name,
		JSON:      string(raw),
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		doc.Version = r.count(txn) + 1
		if err := r.deactivateCurrent(txn); err != nil {
			return err
		}
		return r.writeActive(txn, doc)
	})
	if err != nil {
		return FlowDocument{}, err
	}
	r.log.Debug("Flow saved", "id", doc.ID, "name", name, "size", len(raw))
	return doc, nil
}

func (r FlowRepository) Get(id uuid.UUID) (FlowDocument, error) {
	var doc FlowDocument
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		doc, err = r.read(txn, id)
		return err
	})
	return doc, err
}

// List returns every document, oldest first.
func (r FlowRepository) List() ([]FlowDocument, error) {
	var docs []FlowDocument
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(flowPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var doc FlowDocument
				if err := json.Unmarshal(value, &doc); err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Version < docs[j].Version
	})
	return docs, nil
}

// Activate makes an already stored document the active one.
func (r FlowRepository) Activate(id uuid.UUID) (FlowDocument, error) {
	var doc FlowDocument
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		doc, err = r.read(txn, id)
		if err != nil {
			return err
		}
		if err := r.deactivateCurrent(txn); err != nil {
			return err
		}
		doc.Active = true
		return r.writeActive(txn, doc)
	})
	return doc, err
}

// Active returns the active document or ErrNoActiveFlow.
func (r FlowRepository) Active() (FlowDocument, error) {
	var doc FlowDocument
	err := r.db.View(func(txn *badger.Txn) error {
		id, ok, err := r.activeID(txn)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrNoActiveFlow
		}
		doc, err = r.read(txn, id)
		return err
	})
	return doc, err
}

// count scans keys only.
func (r FlowRepository) count(txn *badger.Txn) int {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	prefix := []byte(flowPrefix)
	n := 0
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		n++
	}
	return n
}

func (r FlowRepository) activeID(txn *badger.Txn) (uuid.UUID, bool, error) {
	item, err := txn.Get([]byte(activeKey))
	if err == badger.ErrKeyNotFound {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	var id uuid.UUID
	err = item.Value(func(value []byte) error {
		id, err = uuid.ParseBytes(value)
		return err
	})
	return id, err == nil, err
}

func (r FlowRepository) deactivateCurrent(txn *badger.Txn) error {
	id, ok, err := r.activeID(txn)
	if err != nil || !ok {
		return err
	}
	previous, err := r.read(txn, id)
	if err != nil {
		return err
	}
	previous.Active = false
	return r.write(txn, previous)
}

func (r FlowRepository) writeActive(txn *badger.Txn, doc FlowDocument) error {
	if err := r.write(txn, doc); err != nil {
		return err
	}
	return txn.Set([]byte(activeKey), []byte(doc.ID.String()))
}

func (r FlowRepository) write(txn *badger.Txn, doc FlowDocument) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return txn.Set(flowKey(doc.ID), value)
}

func (r FlowRepository) read(txn *badger.Txn, id uuid.UUID) (FlowDocument, error) {
	item, err := txn.Get(flowKey(id))
	if err == badger.ErrKeyNotFound {
		return FlowDocument{}, fmt.Errorf("%w: %s", errors.ErrFlowNotFound, id)
	}
	if err != nil {
		return FlowDocument{}, err
	}
	var doc FlowDocument
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &doc)
	})
	return doc, err
}

func flowKey(id uuid.UUID) []byte {
	return []byte(flowPrefix + id.String())
}
