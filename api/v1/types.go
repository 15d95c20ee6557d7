package v1

// Health defines model for Health.
type Health struct {
	Status string `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// Result defines model for Result.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VTSStatus defines model for VTSStatus.
type VTSStatus struct {
	Host          string `json:"host"`
	Port          int    `json:"port"`
	Connected     bool   `json:"connected"`
	Authenticated bool   `json:"authenticated"`
	HasToken      bool   `json:"has_token"`
}

// VTSAuthRequest defines model for VTSAuthRequest.
type VTSAuthRequest struct {
	// Port overrides the VTube Studio port before authenticating.
	Port *int `json:"port,omitempty"`
}

// HotkeyList defines model for HotkeyList.
type HotkeyList struct {
	Hotkeys []map[string]any `json:"hotkeys"`

	// Error is set when the listing failed. Hotkeys is empty in that case.
	Error *string `json:"error,omitempty"`
}

// HotkeyTriggerRequest defines model for HotkeyTriggerRequest.
type HotkeyTriggerRequest struct {
	HotkeyID string `json:"hotkey_id" binding:"required"`
}

// HotkeyTriggerResult defines model for HotkeyTriggerResult.
type HotkeyTriggerResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	HotkeyID string `json:"hotkey_id"`
}

// TTSRequest defines model for TTSRequest.
type TTSRequest struct {
	Text string `json:"text"`

	// Speaker is the VOICEVOX speaker id. The server default is used when absent.
	Speaker *int `json:"speaker,omitempty"`
}
