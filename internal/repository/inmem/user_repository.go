// Package inmem is a process-local user store used for development
// (DB_DRIVER=memory) and tests.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
	now   func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]*models.User),
		now:   time.Now,
	}
}

func clone(u *models.User) *models.User {
	c := *u
	return &c
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmailPhone == user.EmailPhone {
			return repository.ErrDuplicate
		}
	}
	if _, ok := r.users[user.ID]; ok {
		return repository.ErrDuplicate
	}
	r.users[user.ID] = clone(user)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		return clone(u), nil
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByIdentity(_ context.Context, emailPhone string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.EmailPhone == emailPhone {
			return clone(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) ListByRole(_ context.Context, role models.Role) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, clone(u))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// modify applies fn to the stored row matching id and role.
func (r *UserRepository) modify(id uuid.UUID, role models.Role, fn func(u *models.User) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.Role != role {
		return repository.ErrNotFound
	}
	next := clone(u)
	if err := fn(next); err != nil {
		return err
	}
	next.UpdatedAt = r.now()
	r.users[id] = next
	return nil
}

func (r *UserRepository) UpdateStudentDetails(_ context.Context, id uuid.UUID, d models.StudentDetails) error {
	return r.modify(id, models.RoleStudent, func(u *models.User) error {
		u.Name = &d.Name
		u.RollNumber = &d.RollNumber
		u.Department = &d.Department
		u.Age = d.Age
		u.BloodGroup = &d.BloodGroup
		u.ParentDetails = d.ParentDetails
		u.Subjects = d.Subjects
		return nil
	})
}

func (r *UserRepository) UpdateTeacherProfile(_ context.Context, id uuid.UUID, p models.TeacherProfile) error {
	return r.modify(id, models.RoleTeacher, func(u *models.User) error {
		u.Name = &p.Name
		u.Department = &p.Department
		u.Age = p.Age
		u.BloodGroup = &p.BloodGroup
		return nil
	})
}

func (r *UserRepository) UpdatePassword(_ context.Context, id uuid.UUID, role models.Role, hash string) error {
	return r.modify(id, role, func(u *models.User) error {
		u.Password = hash
		return nil
	})
}

func (r *UserRepository) SetRecordField(_ context.Context, id uuid.UUID, field models.RecordField, value *string) error {
	if !field.Valid() {
		return fmt.Errorf("unknown record field %q", field)
	}
	return r.modify(id, models.RoleStudent, func(u *models.User) error {
		u.SetValue(field, value)
		return nil
	})
}

func (r *UserRepository) ModifyRecordField(_ context.Context, id uuid.UUID, field models.RecordField, fn func(current *string) (*string, error)) error {
	if !field.Valid() {
		return fmt.Errorf("unknown record field %q", field)
	}
	return r.modify(id, models.RoleStudent, func(u *models.User) error {
		next, err := fn(u.Value(field))
		if err != nil {
			return err
		}
		u.SetValue(field, next)
		return nil
	})
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID, role models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.Role != role {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
