package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/core/usecases/removekey"
)

// RemoveKey godoc
// @Summary      Remove key
// @Description  Remove a stored key. Journaled messages are kept.
// @Tags         keys
// @Param        slug  path  string  true  "Key slug"
// @Success      204
// @Failure      404
// @Router       /api/keys/{slug} [delete]
func (a *API) RemoveKey(c *gin.Context) {
	slug := c.Param("slug")

	if err := a.container.RemoveKey.Execute(c, slug); err != nil {
		switch {
		case errors.Is(err, removekey.ErrKeyNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
