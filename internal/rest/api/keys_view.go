package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/core/usecases/getkey"
	"github.com/sergeii/sg41/internal/rest/model"
)

// ViewKey godoc
// @Summary      View key
// @Description  Return the cam patterns of a stored key
// @Tags         keys
// @Produce      json
// @Param        slug  path      string  true  "Key slug"
// @Success      200   {object}  model.Key
// @Failure      404
// @Router       /api/keys/{slug} [get]
func (a *API) ViewKey(c *gin.Context) {
	slug := c.Param("slug")

	k, err := a.container.GetKey.Execute(c, slug)
	if err != nil {
		switch {
		case errors.Is(err, getkey.ErrKeyNotFound):
			a.logger.Debug().Str("key", slug).Msg("Requested key not found")
			c.Status(http.StatusNotFound)
		default:
			a.logger.Error().Err(err).Str("key", slug).Msg("Failed to obtain key")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewKeyFromDomain(k))
}
