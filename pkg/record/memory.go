package record

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local tooling. It
// applies update commands structurally (Fields + Values) rather than
// parsing expression text.
type MemoryStore struct {
	mu     sync.RWMutex
	keys   map[string]string // table -> key attribute name
	tables map[string]map[string]Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys:   map[string]string{},
		tables: map[string]map[string]Item{},
	}
}

// DeclareTable registers the key attribute for a table so PutRecord can
// index items. Must be called before use, mirroring table provisioning.
func (s *MemoryStore) DeclareTable(table, keyField string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[table] = keyField
	if s.tables[table] == nil {
		s.tables[table] = map[string]Item{}
	}
}

func (s *MemoryStore) PutRecord(_ context.Context, table string, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := item.String(s.keys[table])
	s.tables[table][id] = cloneItem(item)
	return nil
}

func (s *MemoryStore) UpdateRecord(_ context.Context, table string, key Key, cmd UpdateCommand) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.tables[table][key.Value]
	if !ok {
		return nil, ErrItemNotFound
	}
	updated := Item{}
	for _, field := range cmd.Fields {
		v := cmd.Values[":"+field]
		item[field] = v
		updated[field] = v
	}
	return updated, nil
}

func (s *MemoryStore) GetRecord(_ context.Context, table string, key Key) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.tables[table][key.Value]
	if !ok {
		return nil, ErrItemNotFound
	}
	return cloneItem(item), nil
}

func (s *MemoryStore) Scan(_ context.Context, table string, filter *FieldFilter) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []Item
	for _, item := range s.tables[table] {
		if filter != nil && item.String(filter.Field) != filter.Value {
			continue
		}
		items = append(items, cloneItem(item))
	}
	return items, nil
}

func (s *MemoryStore) FindByField(ctx context.Context, table, field, value string) (Item, error) {
	items, err := s.Scan(ctx, table, &FieldFilter{Field: field, Value: value})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items[0], nil
}

func cloneItem(item Item) Item {
	out := make(Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
