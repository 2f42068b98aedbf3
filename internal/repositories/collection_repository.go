package repositories

import (
	"sort"

	"deskpilot/internal/cache"
	"deskpilot/internal/models"
	"deskpilot/internal/storage"
)

// collectionRepository keeps one JSON array file in sync with an in-memory,
// newest-first copy of its records.
type collectionRepository[T models.Record[T]] struct {
	name    string // file name without extension, e.g. "chats"
	label   string // singular noun used in NotFoundError
	backend *storage.Backend
	cache   *cache.Store[[]T]
}

func newCollectionRepository[T models.Record[T]](backend *storage.Backend, name, label string) *collectionRepository[T] {
	return &collectionRepository[T]{
		name:    name,
		label:   label,
		backend: backend,
		cache:   cache.New(cloneRecords[T]),
	}
}

func (r *collectionRepository[T]) GetAll() []T {
	items := r.cache.GetOrLoad(r.load)
	sortByTimestampDesc(items)
	return items
}

func (r *collectionRepository[T]) Upsert(item T) error {
	item = item.Normalize()
	return r.cache.Mutate(r.load, func(items []T) ([]T, error) {
		replaced := false
		for i := range items {
			if items[i].RecordID() == item.RecordID() {
				items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, item)
		}
		sortByTimestampDesc(items)
		return items, nil
	}, r.persist)
}

func (r *collectionRepository[T]) Delete(id string) error {
	return r.cache.Mutate(r.load, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for _, it := range items {
			if it.RecordID() != id {
				kept = append(kept, it)
			}
		}
		if len(kept) == len(items) {
			return nil, &storage.NotFoundError{Collection: r.label, ID: id}
		}
		return kept, nil
	}, r.persist)
}

func (r *collectionRepository[T]) load() []T {
	items := storage.LoadNamed(r.backend, r.name, func() []T { return []T{} }, nil)
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, it.Normalize())
	}
	sortByTimestampDesc(out)
	return out
}

func (r *collectionRepository[T]) persist(items []T) error {
	if items == nil {
		items = []T{}
	}
	return r.backend.SaveNamed(r.name, items)
}

func sortByTimestampDesc[T models.Record[T]](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RecordTimestamp() > items[j].RecordTimestamp()
	})
}

func cloneRecords[T models.Record[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
