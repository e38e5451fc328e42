package service

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/store"
)

type UserService struct {
	store *store.FileStore
}

func NewUserService(fs *store.FileStore) *UserService {
	return &UserService{store: fs}
}

func (s *UserService) List() ([]model.PublicUser, error) {
	users, err := store.Read[model.User](s.store, store.Users)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// Create adds a user with a bcrypt-hashed password. Email uniqueness is
// enforced inside the collection's Mutate cycle, so two concurrent creates
// cannot both pass the scan.
func (s *UserService) Create(req model.CreateUserRequest) (model.PublicUser, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return model.PublicUser{}, fmt.Errorf("%w: email, password, and name required", ErrInvalidInput)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.PublicUser{}, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
	}

	_, err = store.Mutate(s.store, store.Users, func(users []model.User) ([]model.User, error) {
		for _, existing := range users {
			if existing.Email == user.Email {
				return nil, fmt.Errorf("%w: email already exists", ErrConflict)
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

// Update applies the provided fields to the user with the given id. A new
// password is rehashed; a new email must not collide with another user.
func (s *UserService) Update(id string, req model.UpdateUserRequest) (model.PublicUser, error) {
	var updated model.PublicUser
	_, err := store.Mutate(s.store, store.Users, func(users []model.User) ([]model.User, error) {
		idx := -1
		for i := range users {
			if users[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}

		if req.Email != "" {
			for i := range users {
				if i != idx && users[i].Email == req.Email {
					return nil, fmt.Errorf("%w: email already exists", ErrConflict)
				}
			}
			users[idx].Email = req.Email
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			users[idx].PasswordHash = string(hash)
		}
		if req.Name != "" {
			users[idx].Name = req.Name
		}
		if req.Role != "" {
			users[idx].Role = req.Role
		}

		updated = users[idx].Public()
		return users, nil
	})
	if err != nil {
		return model.PublicUser{}, err
	}
	return updated, nil
}

// Delete removes the user if present. Deleting an absent id is not an error:
// the collection is unchanged and the caller gets the same success outcome.
func (s *UserService) Delete(id string) error {
	_, err := store.Mutate(s.store, store.Users, func(users []model.User) ([]model.User, error) {
		kept := users[:0]
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		return kept, nil
	})
	return err
}
