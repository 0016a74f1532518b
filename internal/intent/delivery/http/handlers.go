package http

import (
	"github.com/gin-gonic/gin"

	"smartfactory-assistant/internal/middleware"
	"smartfactory-assistant/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a command with keywords only
// @Description Maps free text to a catalogue action without calling the reasoning service.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-User-ID   header string     false "Actor id"
// @Param       X-User-Role header string     false "Actor role"
// @Param       body        body   resolveReq true  "Command text"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intent/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Resolve(ctx, middleware.GetScope(c), req.Text)
	if err != nil {
		h.l.Warnf(ctx, "uc.Resolve: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResolveResp(res))
}

// ResolveHybrid godoc
// @Summary     Resolve a command with the semantic fallback
// @Description Keyword resolution first; ambiguous or fuzzy results are confirmed or replaced by the reasoning service.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-User-ID   header string     false "Actor id"
// @Param       X-User-Role header string     false "Actor role"
// @Param       body        body   resolveReq true  "Command text"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intent/resolve/hybrid [POST]
func (h *handler) ResolveHybrid(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.ResolveHybrid(ctx, middleware.GetScope(c), req.Text)
	if err != nil {
		h.l.Warnf(ctx, "uc.ResolveHybrid: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResolveResp(res))
}

// ExtractPayload godoc
// @Summary     Extract the free-text payload of a command
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-User-Role header string            false "Actor role"
// @Param       body        body   extractPayloadReq true  "Text and action"
// @Success     200 {object} intent.Payload
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Action not found"
// @Failure     413 {object} response.Resp "Input too long"
// @Failure     422 {object} response.Resp "Action takes no payload"
// @Router      /api/v1/intent/extract-payload [POST]
func (h *handler) ExtractPayload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractPayloadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.ExtractPayload(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ExtractPayload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, p)
}

// ListActions godoc
// @Summary     List actions available to the caller
// @Tags        Intent
// @Produce     json
// @Param       X-User-Role header string false "Actor role"
// @Success     200 {object} listActionsResp
// @Router      /api/v1/intent/actions [GET]
func (h *handler) ListActions(c *gin.Context) {
	ctx := c.Request.Context()

	actions, err := h.uc.ListActions(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListActions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListActionsResp(actions))
}

// Suggest godoc
// @Summary     Suggest actions for partially typed input
// @Tags        Intent
// @Produce     json
// @Param       X-User-Role header string false "Actor role"
// @Param       q           query  string false "Partial input"
// @Param       limit       query  int    false "Max suggestions (default 5, max 20)"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intent/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Suggest(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestResp(s))
}

// CacheStats godoc
// @Summary     Semantic and payload cache statistics
// @Tags        Intent
// @Produce     json
// @Success     200 {object} intent.CacheStats
// @Router      /api/v1/intent/cache/stats [GET]
func (h *handler) CacheStats(c *gin.Context) {
	response.OK(c, h.uc.CacheStats(c.Request.Context()))
}

// ClearCache godoc
// @Summary     Drop every cached verdict and payload
// @Tags        Intent
// @Produce     json
// @Param       X-User-Role header string true "Must be admin"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/intent/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	h.uc.ClearCache(c.Request.Context())
	response.OK(c, nil)
}
