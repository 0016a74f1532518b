package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/intent/semantic"
)

// SemanticMatch godoc
// @Summary     Pick the intent that best fits an input
// @Tags        Reasoning
// @Accept      json
// @Produce     json
// @Param       body body semantic.MatchRequest true "Input and candidate intents"
// @Success     200 {object} envelope
// @Failure     400 {object} envelope
// @Failure     502 {object} envelope
// @Router      /api/v1/chat/semantic-match [POST]
func (h *handler) SemanticMatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req semantic.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Error: "invalid request body"})
		return
	}

	v, err := h.uc.MatchIntent(ctx, req)
	if err != nil {
		h.l.Warnf(ctx, "uc.MatchIntent: %v", err)
		c.JSON(statusFor(err), envelope{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, envelope{Success: true, Data: newVerdictResp(v)})
}

// ExtractContent godoc
// @Summary     Split the command phrase from the content
// @Tags        Reasoning
// @Accept      json
// @Produce     json
// @Param       body body semantic.ExtractRequest true "Input and intent"
// @Success     200 {object} envelope
// @Failure     400 {object} envelope
// @Failure     502 {object} envelope
// @Router      /api/v1/chat/extract-content [POST]
func (h *handler) ExtractContent(c *gin.Context) {
	ctx := c.Request.Context()

	var req semantic.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Error: "invalid request body"})
		return
	}

	out, err := h.uc.ExtractContent(ctx, req)
	if err != nil {
		h.l.Warnf(ctx, "uc.ExtractContent: %v", err)
		c.JSON(statusFor(err), envelope{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, envelope{Success: true, Data: out})
}
