// ================== internal/features/items/handler.go ==================
package items

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yucheng-lo/foundbot/internal/pkg/response"
	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

// Store is the slice of the repository the admin handlers need.
type Store interface {
	ListOpen(ctx context.Context, limit int64) ([]LostItem, error)
	GetByID(ctx context.Context, id string) (*LostItem, error)
	Resolve(ctx context.Context, id string) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List returns the open items, newest first, capped at the carousel
// limit regardless of the query parameter.
func (h *Handler) List(c *gin.Context) {
	limit := int64(DefaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		if l, err := strconv.ParseInt(raw, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}

	result, err := h.store.ListOpen(c.Request.Context(), limit)
	if err != nil {
		response.DatabaseError(c, "Failed to list items")
		return
	}

	response.Success(c, result)
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DatabaseError(c, "Failed to load item")
		return
	}

	if item == nil {
		response.NotFound(c, "Item not found", "ITEM_NOT_FOUND")
		return
	}

	response.Success(c, item)
}

// Resolve marks an item as claimed.
func (h *Handler) Resolve(c *gin.Context) {
	err := h.store.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "Item not found", "ITEM_NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to resolve item")
		return
	}

	response.Success(c, map[string]string{"message": "Item resolved"})
}
