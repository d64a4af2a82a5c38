package service

import (
	"sort"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
)

// ---- fakes ----

type fakeUserRepo struct {
	users map[string]*model.User // by id
	err   error                  // forced error for any call
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) ByID(id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) ByUsername(username string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) Count() (int, error) {
	return len(f.users), f.err
}

type fakeTitheRepo struct {
	records   []*model.TithingRecord
	userRepo  *fakeUserRepo
	createErr error
	byIDErr   error
}

func (f *fakeTitheRepo) Create(record *model.TithingRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.userRepo != nil {
		if _, ok := f.userRepo.users[record.UserID]; !ok {
			return repository.ErrUserNotFound
		}
	}
	clone := *record
	f.records = append(f.records, &clone)
	return nil
}

func (f *fakeTitheRepo) ByID(id string) (*model.TithingRecord, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	for _, r := range f.records {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeTitheRepo) ByUser(userID string) ([]*model.TithingRecord, error) {
	var out []*model.TithingRecord
	for _, r := range f.records {
		if r.UserID == userID {
			clone := *r
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}
