package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/rest/model"
)

// ListKeys godoc
// @Summary      List keys
// @Description  List the stored keys ordered by slug
// @Tags         keys
// @Produce      json
// @Success      200 {array} model.Key
// @Router       /api/keys [get]
func (a *API) ListKeys(c *gin.Context) {
	keys, err := a.container.ListKeys.Execute(c)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to obtain keys")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Key, 0, len(keys))
	for _, k := range keys {
		result = append(result, model.NewKeyFromDomain(k))
	}
	c.JSON(http.StatusOK, result)
}
