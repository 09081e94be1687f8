package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/sbilibin2017/workout-tracker/internal/services"
)

//go:generate mockgen -source=todos.go -destination=mock_todos.go -package=handlers

// ItemLister lists the items of one user.
type ItemLister interface {
	List(ctx context.Context, userID int64) ([]models.ExerciseItem, error)
}

// ItemCreator creates items.
type ItemCreator interface {
	Create(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error)
}

// ItemUpdater replaces the editable fields of an item.
type ItemUpdater interface {
	Update(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error)
}

// ItemToggler flips the completion flag of an item.
type ItemToggler interface {
	Toggle(ctx context.Context, id int64) (*models.ExerciseItem, error)
}

// ItemDeleter removes items.
type ItemDeleter interface {
	Delete(ctx context.Context, id int64) (*models.ExerciseItem, error)
}

// ItemRequest represents the JSON body for creating or updating a todo item
// swagger:model ItemRequest
type ItemRequest struct {
	// Owner id, ignored on update
	// default: 2
	UserID int64 `json:"user_id"`

	// Body part
	// required: true
	// default: Chest
	Part string `json:"part"`

	// Exercise description
	// required: true
	// default: Push-ups
	Content string `json:"content"`

	// Completion flag
	// default: false
	IsCompleted bool `json:"is_completed"`
}

// ItemResponse represents a stored todo item
// swagger:model ItemResponse
type ItemResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Part        string `json:"part"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

func newItemResponse(item *models.ExerciseItem) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		UserID:      item.OwnerID,
		Part:        item.BodyPart,
		Content:     item.Description,
		IsCompleted: item.IsCompleted,
	}
}

func decodeItemRequest(r *http.Request) (*ItemRequest, error) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	if req.Part == "" || req.Content == "" {
		return nil, errors.New("part and content are required")
	}
	return &req, nil
}

// writeItemResult answers a single-item mutation.
func writeItemResult(w http.ResponseWriter, r *http.Request, status int, item *models.ExerciseItem, err error) {
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "Todo not found")
		case errors.Is(err, services.ErrUnknownUser):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeInternalError(w, r, err)
		}
		return
	}
	writeJSON(w, status, newItemResponse(item))
}

// NewListItemsHandler returns an HTTP handler listing the items of a user.
// @Summary List todo items
// @Description Returns all items owned by user_id, oldest first.
// @Tags todos
// @Produce json
// @Param user_id query int true "User id"
// @Success 200 {array} handlers.ItemResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid user_id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos [get]
func NewListItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		resp := make([]ItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, newItemResponse(&items[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateItemHandler returns an HTTP handler creating an item.
// @Summary Create todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param item body handlers.ItemRequest true "Item"
// @Success 200 {object} handlers.ItemResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeItemRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.UserID <= 0 {
			writeError(w, http.StatusBadRequest, errInvalidUserID.Error())
			return
		}

		created, err := svc.Create(r.Context(), models.ExerciseItem{
			OwnerID:     req.UserID,
			BodyPart:    req.Part,
			Description: req.Content,
			IsCompleted: req.IsCompleted,
		})
		writeItemResult(w, r, http.StatusOK, created, err)
	}
}

// NewUpdateItemHandler returns an HTTP handler replacing part, content and completion of an item.
// @Summary Update todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Item id"
// @Param item body handlers.ItemRequest true "Item"
// @Success 200 {object} handlers.ItemResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDFromPath(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req, err := decodeItemRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), models.ExerciseItem{
			ID:          id,
			BodyPart:    req.Part,
			Description: req.Content,
			IsCompleted: req.IsCompleted,
		})
		writeItemResult(w, r, http.StatusOK, updated, err)
	}
}

// NewToggleItemHandler returns an HTTP handler flipping the completion flag of an item.
// @Summary Toggle todo item
// @Tags todos
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} handlers.ItemResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/{id}/toggle [patch]
func NewToggleItemHandler(svc ItemToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDFromPath(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		toggled, err := svc.Toggle(r.Context(), id)
		writeItemResult(w, r, http.StatusOK, toggled, err)
	}
}

// NewDeleteItemHandler returns an HTTP handler removing an item.
// @Summary Delete todo item
// @Tags todos
// @Produce json
// @Param id path int true "Item id"
// @Success 200 {object} handlers.ItemResponse "The deleted item"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todos/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDFromPath(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		writeItemResult(w, r, http.StatusOK, deleted, err)
	}
}
