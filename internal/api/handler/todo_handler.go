package handler

import (
	"net/http"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/api/middleware"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/app/service"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/go-chi/chi/v5"
)

type TodoHandler struct {
	todoService *service.TodoService
	verifier    middleware.TokenVerifier
}

func NewTodoHandler(ts *service.TodoService, verifier middleware.TokenVerifier) *TodoHandler {
	return &TodoHandler{todoService: ts, verifier: verifier}
}

func (h *TodoHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator(h.verifier)) // All todo routes require auth
	r.Post("/", h.createTodo)
	r.Get("/", h.listTodos)
	r.Get("/{todoID}", h.getTodo)
	r.Put("/{todoID}", h.updateTodo)
	r.Delete("/{todoID}", h.deleteTodo)
}

// owner returns the authenticated caller. Authenticator guarantees it is set.
func owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	userUUID, ok := middleware.GetUserUUIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, middleware.MsgMissingAuthHeader)
	}
	return userUUID, ok
}

func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := service.ParseTodoID(chi.URLParam(r, "todoID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return 0, false
	}
	return id, true
}

func (h *TodoHandler) createTodo(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := owner(w, r)
	if !ok {
		return
	}

	var req service.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), userUUID, req)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) listTodos(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := owner(w, r)
	if !ok {
		return
	}

	todos, err := h.todoService.ListTodos(r.Context(), userUUID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) getTodo(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := owner(w, r)
	if !ok {
		return
	}
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), userUUID, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) updateTodo(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := owner(w, r)
	if !ok {
		return
	}
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var req service.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), userUUID, id, req)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	userUUID, ok := owner(w, r)
	if !ok {
		return
	}
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), userUUID, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	common.RespondNoContent(w)
}
