package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/core/entities/key"
	"github.com/sergeii/sg41/internal/core/usecases/addkey"
	"github.com/sergeii/sg41/internal/rest/model"
)

// AddKey godoc
// @Summary      Add key
// @Description  Store a key with the given cam patterns, one string of 0 and 1 per wheel
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        key  body      model.NewKey  true  "Key name and cam patterns"
// @Success      201  {object}  model.Key
// @Failure      400  {object}  Error
// @Failure      409  {object}  Error
// @Failure      422  {object}  Error
// @Router       /api/keys [post]
func (a *API) AddKey(c *gin.Context) {
	var form model.NewKey
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "Invalid key"})
		return
	}

	k, err := a.container.AddKey.Execute(c, addkey.NewRequest(form.Name, form.Patterns))
	if err != nil {
		a.respondKeyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewKeyFromDomain(k))
}

func (a *API) respondKeyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, addkey.ErrKeyExists):
		c.JSON(http.StatusConflict, Error{Error: "Key with this name already exists"})
	case errors.Is(err, key.ErrInvalidName):
		c.JSON(http.StatusUnprocessableEntity, Error{Error: "Key name must contain letters or digits"})
	case errors.Is(err, addkey.ErrInvalidKey):
		c.JSON(http.StatusUnprocessableEntity, Error{Error: "Invalid key"})
	default:
		a.logger.Error().Err(err).Msg("Failed to add key")
		c.Status(http.StatusInternalServerError)
	}
}
