package models

// Speech is a single synthesis request for the VOICEVOX engine.
// A nil Speaker selects the configured default.
type Speech struct {
	Text    string
	Speaker *int
}

// Audio is the synthesized result.
type Audio struct {
	MimeType string
	Data     []byte
}
