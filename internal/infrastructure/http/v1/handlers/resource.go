// Package handlers provides HTTP request handlers.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taproom/internal/core/apperror"
	"taproom/internal/core/result"
	"taproom/internal/core/validation"
	"taproom/internal/domain"
	"taproom/internal/infrastructure/http/v1/dto"
)

// ResourceHandler serves the create, patch, delete and search endpoints of
// one resource. C, U, S and R are the create, update, search and response
// shapes of that resource.
type ResourceHandler[C, U, S, R any] struct {
	*BaseHandler
	service     domain.ResourceService[C, U, S, R]
	createRules validation.Validator[[]C]
	updateRules validation.Validator[[]U]
	searchRules validation.Validator[S]

	// tagged switches mutation responses to the result envelope
	tagged bool
}

// ResourceHandlerConfig configures a ResourceHandler.
type ResourceHandlerConfig[C, U, S, R any] struct {
	Service       domain.ResourceService[C, U, S, R]
	CreateRules   validation.Validator[[]C]
	UpdateRules   validation.Validator[[]U]
	SearchRules   validation.Validator[S]
	TaggedResults bool
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler[C, U, S, R any](
	base *BaseHandler,
	cfg ResourceHandlerConfig[C, U, S, R],
) *ResourceHandler[C, U, S, R] {
	return &ResourceHandler[C, U, S, R]{
		BaseHandler: base,
		service:     cfg.Service,
		createRules: cfg.CreateRules,
		updateRules: cfg.UpdateRules,
		searchRules: cfg.SearchRules,
		tagged:      cfg.TaggedResults,
	}
}

// Create handles POST /{resource} with a JSON array of create requests.
func (h *ResourceHandler[C, U, S, R]) Create(c *gin.Context) {
	var reqs []C
	if err := h.DecodeJSON(c, &reqs); err != nil {
		h.reject(c, err)
		return
	}
	if errs := h.createRules("", reqs); !errs.Valid() {
		h.reject(c, errs.Err())
		return
	}

	out, err := h.service.Create(c.Request.Context(), reqs)
	if err != nil {
		h.Error(c, err)
		return
	}

	if h.tagged {
		h.Created(c, result.OK(out))
		return
	}
	h.Created(c, out)
}

// Update handles PATCH /{resource} with a JSON array of partial updates.
func (h *ResourceHandler[C, U, S, R]) Update(c *gin.Context) {
	var reqs []U
	if err := h.DecodeJSON(c, &reqs); err != nil {
		h.reject(c, err)
		return
	}
	if errs := h.updateRules("", reqs); !errs.Valid() {
		h.reject(c, errs.Err())
		return
	}

	if err := h.service.Update(c.Request.Context(), reqs); err != nil {
		h.Error(c, err)
		return
	}
	h.Status(c, http.StatusOK)
}

// Delete handles DELETE /{resource} with a JSON array of ids.
func (h *ResourceHandler[C, U, S, R]) Delete(c *gin.Context) {
	var ids []int64
	if err := h.DecodeJSON(c, &ids); err != nil {
		h.reject(c, err)
		return
	}
	if errs := validation.IDs("", ids); !errs.Valid() {
		h.reject(c, errs.Err())
		return
	}

	if err := h.service.Delete(c.Request.Context(), ids); err != nil {
		h.Error(c, err)
		return
	}
	h.Status(c, http.StatusNoContent)
}

// Search handles POST /{resource}/get. Matches are streamed as a JSON array.
func (h *ResourceHandler[C, U, S, R]) Search(c *gin.Context) {
	req, ok := h.bindSearch(c)
	if !ok {
		return
	}
	StreamJSON(h.BaseHandler, c, h.service.List(c.Request.Context(), req))
}

// Count handles POST /{resource}/count with the same body as Search.
func (h *ResourceHandler[C, U, S, R]) Count(c *gin.Context) {
	req, ok := h.bindSearch(c)
	if !ok {
		return
	}

	n, err := h.service.Count(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.CountResponse{Count: n})
}

// bindSearch decodes and validates a search body. An empty body means
// "no filters", whether or not its length was announced.
func (h *ResourceHandler[C, U, S, R]) bindSearch(c *gin.Context) (S, bool) {
	var req S
	if err := h.DecodeJSON(c, &req); err != nil && !errors.Is(err, io.EOF) {
		h.Error(c, err)
		return req, false
	}
	if errs := h.searchRules("", req); !errs.Valid() {
		h.Error(c, errs.Err())
		return req, false
	}
	return req, true
}

// reject answers a mutation that never reached the service. In tagged mode
// the failure is rendered as an error result instead of the error envelope.
func (h *ResourceHandler[C, U, S, R]) reject(c *gin.Context, err error) {
	if !h.tagged {
		h.Error(c, err)
		return
	}

	var msgs []string
	if errs, ok := validation.FromError(err); ok {
		msgs = errs.Messages()
	} else if appErr, ok := apperror.AsAppError(err); ok {
		msgs = []string{appErr.Message}
	} else {
		msgs = []string{err.Error()}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, result.Err[any](validation.MessagePrefix, msgs...))
}
