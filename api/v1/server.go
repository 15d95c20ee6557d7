package v1

import "github.com/gin-gonic/gin"

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (GET /vts)
	GetVTSStatus(c *gin.Context)
	// (POST /vts/auth)
	AuthenticateVTS(c *gin.Context)
	// (DELETE /vts/token)
	ClearVTSToken(c *gin.Context)
	// (GET /vts/hotkeys)
	ListVTSHotkeys(c *gin.Context)
	// (POST /vts/hotkeys/trigger)
	TriggerVTSHotkey(c *gin.Context)
	// (POST /tts)
	Synthesize(c *gin.Context)
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/health", si.GetHealth)
	router.GET("/vts", si.GetVTSStatus)
	router.POST("/vts/auth", si.AuthenticateVTS)
	router.DELETE("/vts/token", si.ClearVTSToken)
	router.GET("/vts/hotkeys", si.ListVTSHotkeys)
	router.POST("/vts/hotkeys/trigger", si.TriggerVTSHotkey)
	router.POST("/tts", si.Synthesize)
}
