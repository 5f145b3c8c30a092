package service

import (
	"context"
	"strings"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/model"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/repository"
)

type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

type CreateTodoRequest struct {
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Status      model.TodoStatus `json:"status"`
}

// UpdateTodoRequest fields are optional; absent (or null) fields are left as they are.
type UpdateTodoRequest struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Status      *model.TodoStatus `json:"status,omitempty"`
}

func (s *TodoService) CreateTodo(ctx context.Context, ownerUUID string, req CreateTodoRequest) (*model.Todo, error) {
	if req.Title == "" || req.Status == "" {
		return nil, validationError(MsgTitleStatusRequired)
	}
	title := strings.TrimSpace(req.Title)
	if err := checkTitle(title, MsgTitleBlank); err != nil {
		return nil, err
	}
	if err := checkStatus(req.Status); err != nil {
		return nil, err
	}
	var description string
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}
	if err := checkDescription(description); err != nil {
		return nil, err
	}

	todo := &model.Todo{
		OwnerUUID:   ownerUUID,
		Title:       title,
		Description: description,
		Status:      req.Status,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) ListTodos(ctx context.Context, ownerUUID string) ([]model.Todo, error) {
	return s.todoRepo.ListByOwner(ctx, ownerUUID)
}

func (s *TodoService) GetTodo(ctx context.Context, ownerUUID string, id int64) (*model.Todo, error) {
	return s.todoRepo.FindByIDAndOwner(ctx, id, ownerUUID)
}

func (s *TodoService) UpdateTodo(ctx context.Context, ownerUUID string, id int64, req UpdateTodoRequest) (*model.Todo, error) {
	var patch model.TodoPatch

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := checkTitle(title, MsgTitleEmpty); err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if req.Status != nil {
		if err := checkStatus(*req.Status); err != nil {
			return nil, err
		}
		patch.Status = req.Status
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if err := checkDescription(description); err != nil {
			return nil, err
		}
		patch.Description = &description
	}

	return s.todoRepo.Update(ctx, id, ownerUUID, patch)
}

func (s *TodoService) DeleteTodo(ctx context.Context, ownerUUID string, id int64) error {
	return s.todoRepo.Delete(ctx, id, ownerUUID)
}
