package usecase_test

import (
	"context"
	"sort"

	"shopdb/internal/domain/model"
	repo "shopdb/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type SessionMock struct{ mock.Mock }

func (m *SessionMock) FindOne(ctx context.Context, dest any, where map[string]any) (bool, error) {
	args := m.Called(ctx, dest, where)
	return args.Bool(0), args.Error(1)
}

func (m *SessionMock) Find(ctx context.Context, dest any, where map[string]any) error {
	args := m.Called(ctx, dest, where)
	return args.Error(0)
}

func (m *SessionMock) Add(ctx context.Context, record any) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *SessionMock) Update(ctx context.Context, record any) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *SessionMock) Delete(ctx context.Context, record any) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *SessionMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SessionMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// FindOneがdestに既存の管理者を書き込むようにする
func (m *SessionMock) expectAdmin(email string, a *model.Admin) *mock.Call {
	where := map[string]any{"email": email}
	if a == nil {
		return m.On("FindOne", mock.Anything, mock.AnythingOfType("*model.Admin"), where).Return(false, nil)
	}
	return m.On("FindOne", mock.Anything, mock.AnythingOfType("*model.Admin"), where).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*model.Admin) = *a
		}).
		Return(true, nil)
}

type SessionFactoryMock struct{ mock.Mock }

func (m *SessionFactoryMock) Begin(ctx context.Context) (repo.Session, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(repo.Session)
	return s, args.Error(1)
}

// =====================
// In-memory session
// =====================

// コミットされた行だけが次のSessionから見える
type memStore struct {
	admins  map[int64]model.Admin
	nextID  int64
	commits int
}

func newMemStore() *memStore {
	return &memStore{admins: map[int64]model.Admin{}}
}

func (st *memStore) Begin(ctx context.Context) (repo.Session, error) {
	return &memSession{store: st}, nil
}

type memSession struct {
	store   *memStore
	pending []func()
	done    bool
}

func (s *memSession) FindOne(ctx context.Context, dest any, where map[string]any) (bool, error) {
	for _, a := range s.store.admins {
		if a.Email == where["email"] {
			*dest.(*model.Admin) = a
			return true, nil
		}
	}
	return false, nil
}

func (s *memSession) Find(ctx context.Context, dest any, where map[string]any) error {
	out := make([]model.Admin, 0, len(s.store.admins))
	for _, a := range s.store.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	*dest.(*[]model.Admin) = out
	return nil
}

func (s *memSession) Add(ctx context.Context, record any) error {
	a := record.(*model.Admin)
	s.store.nextID++
	a.ID = s.store.nextID
	row := *a
	s.pending = append(s.pending, func() { s.store.admins[row.ID] = row })
	return nil
}

func (s *memSession) Update(ctx context.Context, record any) error {
	row := *record.(*model.Admin)
	s.pending = append(s.pending, func() { s.store.admins[row.ID] = row })
	return nil
}

func (s *memSession) Delete(ctx context.Context, record any) error {
	id := record.(*model.Admin).ID
	if _, ok := s.store.admins[id]; !ok {
		return repo.ErrNotFound
	}
	s.pending = append(s.pending, func() { delete(s.store.admins, id) })
	return nil
}

func (s *memSession) Commit(ctx context.Context) error {
	for _, apply := range s.pending {
		apply()
	}
	s.pending = nil
	s.done = true
	s.store.commits++
	return nil
}

func (s *memSession) Rollback(ctx context.Context) error {
	s.pending = nil
	return nil
}
