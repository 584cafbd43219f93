package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/rest/model"
)

// GenerateKey godoc
// @Summary      Generate key
// @Description  Store a key with random cam patterns
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        key  body      model.GenerateKey  true  "Key name"
// @Success      201  {object}  model.Key
// @Failure      400  {object}  Error
// @Failure      409  {object}  Error
// @Failure      422  {object}  Error
// @Router       /api/keys/generate [post]
func (a *API) GenerateKey(c *gin.Context) {
	var form model.GenerateKey
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "Invalid key name"})
		return
	}

	k, err := a.container.GenerateKey.Execute(c, form.Name)
	if err != nil {
		a.respondKeyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewKeyFromDomain(k))
}
