package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/domain/model"
)

const MsgTodoNotFound = "Todo not found"

// TodoRepository stores todos. Every method is scoped to an owner; a todo that
// exists but belongs to someone else is reported exactly like a missing one.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	ListByOwner(ctx context.Context, ownerUUID string) ([]model.Todo, error)
	FindByIDAndOwner(ctx context.Context, id int64, ownerUUID string) (*model.Todo, error)
	Update(ctx context.Context, id int64, ownerUUID string, patch model.TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, id int64, ownerUUID string) error
}

type pgTodoRepository struct {
	db *sql.DB
}

func NewPgTodoRepository(db *sql.DB) TodoRepository {
	return &pgTodoRepository{db: db}
}

const todoColumns = `id, owner_uuid, title, description, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*model.Todo, error) {
	todo := &model.Todo{}
	err := row.Scan(
		&todo.ID, &todo.OwnerUUID, &todo.Title, &todo.Description, &todo.Status, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	todo.CreatedAt = todo.CreatedAt.UTC()
	todo.UpdatedAt = todo.UpdatedAt.UTC()
	return todo, nil
}

func notFound() error {
	return common.NewError(common.ErrNotFound, MsgTodoNotFound)
}

// Create inserts the todo and fills in id and timestamps. created_at and
// updated_at share one NOW() so a fresh todo has them equal.
func (r *pgTodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (owner_uuid, title, description, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, todo.OwnerUUID, todo.Title, todo.Description, string(todo.Status)).
		Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Create: %w", err)
	}
	todo.CreatedAt = todo.CreatedAt.UTC()
	todo.UpdatedAt = todo.UpdatedAt.UTC()
	return nil
}

func (r *pgTodoRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + `
	          FROM todos WHERE owner_uuid = $1
	          ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerUUID)
	if err != nil {
		return nil, fmt.Errorf("pgTodoRepository.ListByOwner: %w", err)
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("pgTodoRepository.ListByOwner scan: %w", err)
		}
		todos = append(todos, *todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTodoRepository.ListByOwner rows: %w", err)
	}
	return todos, nil
}

func (r *pgTodoRepository) FindByIDAndOwner(ctx context.Context, id int64, ownerUUID string) (*model.Todo, error) {
	query := `SELECT ` + todoColumns + `
	          FROM todos WHERE id = $1 AND owner_uuid = $2`
	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id, ownerUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("pgTodoRepository.FindByIDAndOwner: %w", err)
	}
	return todo, nil
}

// Update applies the non-nil fields of patch in a single statement guarded by
// id and owner, so there is no window between the ownership check and the write.
func (r *pgTodoRepository) Update(ctx context.Context, id int64, ownerUUID string, patch model.TodoPatch) (*model.Todo, error) {
	query := `UPDATE todos SET
	            title = COALESCE($3, title),
	            description = COALESCE($4, description),
	            status = COALESCE($5, status),
	            updated_at = NOW()
	          WHERE id = $1 AND owner_uuid = $2
	          RETURNING ` + todoColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id, ownerUUID, patch.Title, patch.Description, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("pgTodoRepository.Update: %w", err)
	}
	return todo, nil
}

func (r *pgTodoRepository) Delete(ctx context.Context, id int64, ownerUUID string) error {
	query := `DELETE FROM todos WHERE id = $1 AND owner_uuid = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerUUID)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Delete rows affected: %w", err)
	}
	if n == 0 {
		return notFound()
	}
	return nil
}
