package store

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/notify"
	"spendwise/internal/uuid"
)

// SQL is a Store persisting each child as a row of the nodes table.
type SQL struct {
	feed

	db    *gorm.DB
	cache *SnapshotCache
}

var _ Store = (*SQL)(nil)

// NewSQL creates a store on db. cache may be nil. When several processes
// write the same database, give the cache a TTL: only this store's own
// writes invalidate it.
func NewSQL(db *gorm.DB, broker notify.Broker, cache *SnapshotCache) *SQL {
	return &SQL{
		feed:  feed{broker: broker, log: logger.Named("store.sql")},
		db:    db,
		cache: cache,
	}
}

// Subscribe implements Store. Every snapshot is read from the database,
// since a change signal may come from another process whose writes never
// touched this store's cache.
func (s *SQL) Subscribe(ctx context.Context, p Path, onSnapshot func(RawTree), onError func(error)) (Unsubscribe, error) {
	return s.subscribe(ctx, p, s.readFresh, onSnapshot, onError)
}

// Append implements Store.
func (s *SQL) Append(ctx context.Context, p Path, value any) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	encoded, err := encode(value)
	if err != nil {
		return "", err
	}

	node := models.Node{OwnerID: p.Owner, Collection: string(p.Collection), Key: uuid.New(), Value: encoded}
	if err := s.db.WithContext(ctx).Create(&node).Error; err != nil {
		return "", storeError("append", p, err)
	}

	s.afterWrite(ctx, p)
	return node.Key, nil
}

// Replace implements Store.
func (s *SQL) Replace(ctx context.Context, p Path, id string, value any) error {
	if err := validateChild(p, id); err != nil {
		return err
	}
	encoded, err := encode(value)
	if err != nil {
		return err
	}

	node := models.Node{OwnerID: p.Owner, Collection: string(p.Collection), Key: id, Value: encoded}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "collection"}, {Name: "node_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&node).Error
	if err != nil {
		return storeError("replace", p, err)
	}

	s.afterWrite(ctx, p)
	return nil
}

// Remove implements Store.
func (s *SQL) Remove(ctx context.Context, p Path, id string) error {
	if err := validateChild(p, id); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Where("owner_id = ? AND collection = ? AND node_key = ?", p.Owner, string(p.Collection), id).
		Delete(&models.Node{})
	if res.Error != nil {
		return storeError("remove", p, res.Error)
	}

	if res.RowsAffected > 0 {
		s.afterWrite(ctx, p)
	}
	return nil
}

// Set implements Store.
func (s *SQL) Set(ctx context.Context, p Path, tree RawTree) error {
	if err := p.Validate(); err != nil {
		return err
	}

	rows := make([]models.Node, 0, len(tree))
	for key, value := range tree {
		if err := validateChild(p, key); err != nil {
			return err
		}
		encoded, err := encode(value)
		if err != nil {
			return err
		}
		rows = append(rows, models.Node{OwnerID: p.Owner, Collection: string(p.Collection), Key: key, Value: encoded})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ? AND collection = ?", p.Owner, string(p.Collection)).
			Delete(&models.Node{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return storeError("set", p, err)
	}

	s.afterWrite(ctx, p)
	return nil
}

// ReadOnce implements Store.
func (s *SQL) ReadOnce(ctx context.Context, p Path) (RawTree, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	key := p.String()
	var gen uint64
	if s.cache != nil {
		if tree, ok := s.cache.Get(key); ok {
			return tree, nil
		}
		gen = s.cache.Generation(key)
	}

	var rows []models.Node
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND collection = ?", p.Owner, string(p.Collection)).
		Find(&rows).Error
	if err != nil {
		return nil, storeError("read", p, err)
	}

	tree := make(RawTree, len(rows))
	for _, row := range rows {
		var v any
		if err := json.Unmarshal([]byte(row.Value), &v); err != nil {
			s.log.Warnw("skipping undecodable node", "path", key, "key", row.Key, "error", err)
			continue
		}
		tree[row.Key] = v
	}

	if s.cache != nil {
		s.cache.Put(key, gen, tree)
	}
	return tree, nil
}

// readFresh drops the cached snapshot of p and reads it again, refilling
// the cache for later ReadOnce calls.
func (s *SQL) readFresh(ctx context.Context, p Path) (RawTree, error) {
	if s.cache != nil {
		s.cache.Invalidate(p.String())
	}
	return s.ReadOnce(ctx, p)
}

func (s *SQL) afterWrite(ctx context.Context, p Path) {
	if s.cache != nil {
		s.cache.Invalidate(p.String())
	}
	s.changed(ctx, p)
}

func encode(value any) (string, error) {
	v, err := normalize(value)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode node value: %w", err)
	}
	return string(b), nil
}
