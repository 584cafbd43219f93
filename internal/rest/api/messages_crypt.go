package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/core/usecases/cryptmessage"
	"github.com/sergeii/sg41/internal/rest/model"
)

// EncryptMessage godoc
// @Summary      Encrypt message
// @Description  Encrypt text with a stored key set to the given indicator.
// @Description  With keyboard enabled, free text is typed on the machine keyboard first.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        slug     path      string              true  "Key slug"
// @Param        message  body      model.CryptRequest  true  "Text and indicator"
// @Success      200      {object}  model.CryptResult
// @Failure      400      {object}  Error
// @Failure      404
// @Failure      422      {object}  Error
// @Router       /api/keys/{slug}/encrypt [post]
func (a *API) EncryptMessage(c *gin.Context) {
	a.cryptMessage(c, message.Encrypt)
}

// DecryptMessage godoc
// @Summary      Decrypt message
// @Description  Decrypt text with a stored key set to the given indicator.
// @Description  With keyboard enabled, the printed text is read back as free text.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        slug     path      string              true  "Key slug"
// @Param        message  body      model.CryptRequest  true  "Text and indicator"
// @Success      200      {object}  model.CryptResult
// @Failure      400      {object}  Error
// @Failure      404
// @Failure      422      {object}  Error
// @Router       /api/keys/{slug}/decrypt [post]
func (a *API) DecryptMessage(c *gin.Context) {
	a.cryptMessage(c, message.Decrypt)
}

func (a *API) cryptMessage(c *gin.Context, direction message.Direction) {
	slug := c.Param("slug")

	var form model.CryptRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "Text and indicator are required"})
		return
	}

	ind, err := form.GetIndicator()
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "Invalid indicator"})
		return
	}

	ucRequest := cryptmessage.NewRequest(slug, direction, ind, form.Text, form.Keyboard)
	resp, err := a.container.CryptMessage.Execute(c, ucRequest)
	if err != nil {
		switch {
		case errors.Is(err, cryptmessage.ErrKeyNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, cryptmessage.ErrInvalidText):
			c.JSON(http.StatusUnprocessableEntity, Error{Error: "Text must only contain letters A-Z"})
		default:
			a.logger.Error().
				Err(err).Str("key", slug).Stringer("direction", direction).
				Msg("Failed to process message")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewCryptResultFromDomain(resp))
}
