package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"iter"
	"net/http"

	"github.com/gin-gonic/gin"

	"taproom/internal/core/apperror"
	"taproom/pkg/logger"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// DecodeJSON reads the request body into obj. A missing or malformed
// body is reported as an invalid input error.
func (h *BaseHandler) DecodeJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.NewInvalidInput("request body is required", err)
		}
		return apperror.NewInvalidInput("invalid request body", err).WithDetail("error", err.Error())
	}
	return nil
}

// Error registers err on the gin context and aborts. The JSON body is
// produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Status answers with an empty body.
func (h *BaseHandler) Status(c *gin.Context, code int) {
	c.Status(code)
	c.Writer.WriteHeaderNow()
}

// StreamJSON writes seq as a JSON array, one element at a time, flushing
// after each. An error before the first element goes through the error
// middleware. After that the status line is already on the wire, so the
// connection is dropped once the sequence has been released.
func StreamJSON[T any](h *BaseHandler, c *gin.Context, seq iter.Seq2[T, error]) {
	w := c.Writer
	started := false

	begin := func() {
		c.Header("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		started = true
	}

	write := func(item T) error {
		data, err := json.Marshal(item)
		if err != nil {
			return err
		}
		sep := byte(',')
		if !started {
			begin()
			sep = '['
		}
		if _, err := w.Write([]byte{sep}); err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		w.Flush()
		return nil
	}

	var streamErr error
	for item, err := range seq {
		if err == nil {
			err = write(item)
		}
		if err != nil {
			streamErr = err
			break
		}
	}

	switch {
	case streamErr != nil && !started:
		h.Error(c, streamErr)
	case streamErr != nil:
		logger.Error(c.Request.Context(), "response stream aborted", "error", streamErr)
		panic(http.ErrAbortHandler)
	case !started:
		begin()
		_, _ = w.Write([]byte("[]"))
	default:
		_, _ = w.Write([]byte{']'})
	}
}
