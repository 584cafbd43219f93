package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/sg41/internal/rest/model"
)

// ListMessages godoc
// @Summary      List messages
// @Description  List the journaled messages, most recent first
// @Tags         messages
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of messages"
// @Success      200 {array} model.Message
// @Failure      400
// @Router       /api/messages [get]
func (a *API) ListMessages(c *gin.Context) {
	var form model.MessageFilterForm
	if err := c.ShouldBindQuery(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	messages, err := a.container.ListMessages.Execute(c, form.Limit)
	if err != nil {
		a.logger.Error().Err(err).Int("limit", form.Limit).Msg("Failed to obtain messages")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Message, 0, len(messages))
	for _, msg := range messages {
		result = append(result, model.NewMessageFromDomain(msg))
	}
	c.JSON(http.StatusOK, result)
}
