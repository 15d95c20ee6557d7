package handlers

import (
	"github.com/nonx2/yuuna-server/internal/services"
)

type Handler struct {
	vtsSrv *services.VTSService
	ttsSrv *services.TTSService
}

func New(vtsSrv *services.VTSService, ttsSrv *services.TTSService) *Handler {
	return &Handler{
		vtsSrv: vtsSrv,
		ttsSrv: ttsSrv,
	}
}
