package http

import (
	"github.com/gin-gonic/gin"
)

// processResolveReq binds and validates the resolve request body.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, req.validate()
}

// processExtractPayloadReq binds and validates the extract payload request body.
func (h *handler) processExtractPayloadReq(c *gin.Context) (extractPayloadReq, error) {
	var req extractPayloadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, req.validate()
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, nil
}
