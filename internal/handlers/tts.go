package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/nonx2/yuuna-server/api/v1"
	"github.com/nonx2/yuuna-server/internal/services"
)

// Synthesize turns text into speech through the TTS engine
// (POST /tts)
func (h *Handler) Synthesize(c *gin.Context) {
	var req v1.TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	audio, err := h.ttsSrv.Synthesize(c.Request.Context(), req.ToModel())
	if err != nil {
		var engineErr *services.EngineError
		switch {
		case errors.Is(err, services.ErrEmptyText):
			c.JSON(http.StatusBadRequest, v1.Error{Error: "no text provided"})
		case errors.Is(err, services.ErrEngineUnavailable):
			c.JSON(http.StatusServiceUnavailable, v1.Error{Error: "VOICEVOX engine is not running"})
		case errors.As(err, &engineErr):
			c.JSON(http.StatusInternalServerError, v1.Error{Error: engineErr.Error()})
		default:
			zap.S().Named("handlers").Errorw("tts synthesis failed", "error", err)
			c.JSON(http.StatusInternalServerError, v1.Error{Error: err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, audio.MimeType, audio.Data)
}
