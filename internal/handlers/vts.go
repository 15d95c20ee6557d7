package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/nonx2/yuuna-server/api/v1"
	"github.com/nonx2/yuuna-server/internal/services"
)

// GetVTSStatus returns the connector state
// (GET /vts)
func (h *Handler) GetVTSStatus(c *gin.Context) {
	var resp v1.VTSStatus
	resp.FromModel(h.vtsSrv.Status())

	c.JSON(http.StatusOK, resp)
}

// AuthenticateVTS runs the handshake, optionally against another port
// (POST /vts/auth)
func (h *Handler) AuthenticateVTS(c *gin.Context) {
	var req v1.VTSAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	if req.Port != nil {
		if err := h.vtsSrv.SetPort(*req.Port); err != nil {
			c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
			return
		}
	}

	if err := h.vtsSrv.Authenticate(c.Request.Context()); err != nil {
		c.JSON(vtsErrorStatus(err), v1.Result{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v1.Result{Success: true, Message: "Authenticated"})
}

// ClearVTSToken forgets the stored token
// (DELETE /vts/token)
func (h *Handler) ClearVTSToken(c *gin.Context) {
	h.vtsSrv.ClearToken(c.Request.Context())

	c.JSON(http.StatusOK, v1.Result{Success: true, Message: "Token cleared"})
}

// ListVTSHotkeys lists the hotkeys of the loaded model
// (GET /vts/hotkeys)
func (h *Handler) ListVTSHotkeys(c *gin.Context) {
	hotkeys, err := h.vtsSrv.GetHotkeys(c.Request.Context())
	if err != nil {
		zap.S().Named("handlers").Warnw("failed to list vts hotkeys", "error", err)
	}

	var resp v1.HotkeyList
	resp.FromModel(hotkeys, err)

	c.JSON(http.StatusOK, resp)
}

// TriggerVTSHotkey executes a hotkey
// (POST /vts/hotkeys/trigger)
func (h *Handler) TriggerVTSHotkey(c *gin.Context) {
	var req v1.HotkeyTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "hotkey_id is required"})
		return
	}

	id, err := h.vtsSrv.TriggerHotkey(c.Request.Context(), req.HotkeyID)
	if err != nil {
		c.JSON(vtsErrorStatus(err), v1.HotkeyTriggerResult{Success: false, Message: err.Error(), HotkeyID: req.HotkeyID})
		return
	}

	c.JSON(http.StatusOK, v1.HotkeyTriggerResult{Success: true, Message: "Hotkey triggered", HotkeyID: id})
}

func vtsErrorStatus(err error) int {
	var (
		transportErr *services.TransportError
		rejectedErr  *services.RejectedError
	)

	switch {
	case errors.Is(err, services.ErrEmptyHotkeyID), errors.Is(err, services.ErrInvalidPort):
		return http.StatusBadRequest
	case errors.As(err, &transportErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &rejectedErr):
		if rejectedErr.Stage == "authentication" || rejectedErr.Stage == "token request" {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	case errors.Is(err, services.ErrUnexpectedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
