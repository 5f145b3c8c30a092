package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/model"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/repository"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]model.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return common.NewError(common.ErrConflict, repository.MsgEmailTaken)
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.byEmail[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

type fakeTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]model.Todo
	clock  func() time.Time
	err    error
}

func newFakeTodoRepo() *fakeTodoRepo {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	return &fakeTodoRepo{
		todos: make(map[int64]model.Todo),
		clock: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	todo.ID = r.nextID
	todo.CreatedAt = r.clock()
	todo.UpdatedAt = todo.CreatedAt
	r.todos[todo.ID] = *todo
	return nil
}

func (r *fakeTodoRepo) ListByOwner(_ context.Context, ownerUUID string) ([]model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	todos := make([]model.Todo, 0)
	for _, t := range r.todos {
		if t.OwnerUUID == ownerUUID {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID > todos[j].ID })
	return todos, nil
}

func (r *fakeTodoRepo) FindByIDAndOwner(_ context.Context, id int64, ownerUUID string) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.OwnerUUID != ownerUUID {
		return nil, common.NewError(common.ErrNotFound, repository.MsgTodoNotFound)
	}
	return &t, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, id int64, ownerUUID string, patch model.TodoPatch) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.OwnerUUID != ownerUUID {
		return nil, common.NewError(common.ErrNotFound, repository.MsgTodoNotFound)
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	t.UpdatedAt = r.clock()
	r.todos[id] = t
	return &t, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id int64, ownerUUID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.OwnerUUID != ownerUUID {
		return common.NewError(common.ErrNotFound, repository.MsgTodoNotFound)
	}
	delete(r.todos, id)
	return nil
}

type fakeTokens struct {
	err error
}

func (f fakeTokens) GenerateToken(userUUID, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + userUUID, nil
}
