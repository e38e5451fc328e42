package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/store"
)

// Directory is one generic CRUD component over a collection, configured per
// entity type: which fields are required, how partial updates merge, and what
// the entity is called in messages. Links, services, and members all run
// through the same code path.
type Directory[T any] struct {
	store      *store.FileStore
	collection string
	label      string
	id         func(T) string
	setID      func(*T, string)
	validate   func(T) error
	defaults   func(*T)
	merge      func(dst *T, patch T)
}

// Label is the entity's display name ("Link", "Service", "Member").
func (d *Directory[T]) Label() string {
	return d.label
}

func (d *Directory[T]) List() ([]T, error) {
	return store.Read[T](d.store, d.collection)
}

func (d *Directory[T]) Create(item T) (T, error) {
	var zero T
	if err := d.validate(item); err != nil {
		return zero, err
	}
	d.setID(&item, uuid.NewString())
	if d.defaults != nil {
		d.defaults(&item)
	}

	_, err := store.Mutate(d.store, d.collection, func(records []T) ([]T, error) {
		return append(records, item), nil
	})
	if err != nil {
		return zero, err
	}
	return item, nil
}

// Update merges the provided fields of patch into the stored record.
func (d *Directory[T]) Update(id string, patch T) (T, error) {
	var updated T
	_, err := store.Mutate(d.store, d.collection, func(records []T) ([]T, error) {
		for i := range records {
			if d.id(records[i]) == id {
				d.merge(&records[i], patch)
				updated = records[i]
				return records, nil
			}
		}
		return nil, fmt.Errorf("%w: %s not found", ErrNotFound, strings.ToLower(d.label))
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes the record if present; an absent id leaves the collection
// unchanged and still succeeds.
func (d *Directory[T]) Delete(id string) error {
	_, err := store.Mutate(d.store, d.collection, func(records []T) ([]T, error) {
		kept := records[:0]
		for _, record := range records {
			if d.id(record) != id {
				kept = append(kept, record)
			}
		}
		return kept, nil
	})
	return err
}

func NewLinkDirectory(fs *store.FileStore) *Directory[model.Link] {
	return &Directory[model.Link]{
		store:      fs,
		collection: store.Links,
		label:      "Link",
		id:         func(l model.Link) string { return l.ID },
		setID:      func(l *model.Link, id string) { l.ID = id },
		validate: func(l model.Link) error {
			if l.Name == "" || l.URL == "" {
				return fmt.Errorf("%w: name and url required", ErrInvalidInput)
			}
			return nil
		},
		merge: func(dst *model.Link, patch model.Link) {
			if patch.Name != "" {
				dst.Name = patch.Name
			}
			if patch.URL != "" {
				dst.URL = patch.URL
			}
			if patch.Description != "" {
				dst.Description = patch.Description
			}
		},
	}
}

func NewServiceDirectory(fs *store.FileStore) *Directory[model.Service] {
	return &Directory[model.Service]{
		store:      fs,
		collection: store.Services,
		label:      "Service",
		id:         func(s model.Service) string { return s.ID },
		setID:      func(s *model.Service, id string) { s.ID = id },
		validate: func(s model.Service) error {
			if s.Name == "" {
				return fmt.Errorf("%w: name required", ErrInvalidInput)
			}
			return nil
		},
		defaults: func(s *model.Service) {
			if s.Icon == "" {
				s.Icon = "🔗"
			}
		},
		merge: func(dst *model.Service, patch model.Service) {
			if patch.Name != "" {
				dst.Name = patch.Name
			}
			if patch.Description != "" {
				dst.Description = patch.Description
			}
			if patch.Icon != "" {
				dst.Icon = patch.Icon
			}
		},
	}
}

func NewMemberDirectory(fs *store.FileStore) *Directory[model.Member] {
	return &Directory[model.Member]{
		store:      fs,
		collection: store.Members,
		label:      "Member",
		id:         func(m model.Member) string { return m.ID },
		setID:      func(m *model.Member, id string) { m.ID = id },
		validate: func(m model.Member) error {
			if m.Name == "" {
				return fmt.Errorf("%w: name required", ErrInvalidInput)
			}
			return nil
		},
		merge: func(dst *model.Member, patch model.Member) {
			if patch.Name != "" {
				dst.Name = patch.Name
			}
			if patch.Role != "" {
				dst.Role = patch.Role
			}
			if patch.Bio != "" {
				dst.Bio = patch.Bio
			}
			if patch.Image != "" {
				dst.Image = patch.Image
			}
		},
	}
}
