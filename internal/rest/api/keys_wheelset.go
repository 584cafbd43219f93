package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/core/usecases/recoverindicator"
	"github.com/sergeii/sg41/internal/rest/model"
)

// RecoverIndicator godoc
// @Summary      Recover indicator
// @Description  Find every indicator at which a stored key produces the given printer offsets,
// @Description  either passed as is or derived from a matching plaintext and ciphertext.
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        slug    path      string                 true  "Key slug"
// @Param        search  body      model.WheelsetRequest  true  "Keystream or crib"
// @Success      200     {object}  model.WheelsetResult
// @Failure      400     {object}  Error
// @Failure      404
// @Failure      422     {object}  Error
// @Failure      503     {object}  Error
// @Router       /api/keys/{slug}/wheelset [post]
func (a *API) RecoverIndicator(c *gin.Context) {
	slug := c.Param("slug")

	var form model.WheelsetRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "Either keystream or crib is required"})
		return
	}

	var ucRequest recoverindicator.Request
	if form.Stream != nil {
		ucRequest = recoverindicator.NewStreamRequest(slug, form.Stream)
	} else {
		ucRequest = recoverindicator.NewCribRequest(slug, form.Plaintext, form.Ciphertext)
	}
	for wheelNo, positions := range form.Known {
		ucRequest = ucRequest.WithKnown(wheelNo, positions...)
	}

	found, err := a.container.RecoverIndicator.Execute(c, ucRequest)
	if err != nil {
		switch {
		case errors.Is(err, recoverindicator.ErrKeyNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, recoverindicator.ErrInvalidCrib):
			c.JSON(http.StatusUnprocessableEntity, Error{Error: "Invalid crib"})
		case errors.Is(err, recoverindicator.ErrInvalidStream):
			c.JSON(http.StatusUnprocessableEntity, Error{Error: "Keystream digits must be within 0-25"})
		case errors.Is(err, recoverindicator.ErrInvalidPosition):
			c.JSON(http.StatusUnprocessableEntity, Error{Error: "Invalid known wheel position"})
		case errors.Is(err, recoverindicator.ErrSearchTimeout):
			c.JSON(http.StatusServiceUnavailable, Error{Error: "Search took too long, narrow it down with known positions"})
		default:
			a.logger.Error().Err(err).Str("key", slug).Msg("Failed to recover indicator")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewWheelsetResultFromDomain(found))
}
