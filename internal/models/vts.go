package models

// VTSSettings is the VTube Studio instance the connector talks to.
type VTSSettings struct {
	Host string
	Port int
}

// VTSStatus is the in-memory connector state. It is never persisted.
type VTSStatus struct {
	Settings      VTSSettings
	Connected     bool
	Authenticated bool
	HasToken      bool
}

// Hotkey is a hotkey record exactly as VTube Studio reports it.
type Hotkey map[string]any

// ID returns the hotkeyID field, or an empty string if the remote did not send one.
func (h Hotkey) ID() string {
	id, _ := h["hotkeyID"].(string)
	return id
}

// Name returns the display name of the hotkey.
func (h Hotkey) Name() string {
	name, _ := h["name"].(string)
	return name
}
