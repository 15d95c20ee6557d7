package vts

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	APIName    = "VTubeStudioPublicAPI"
	APIVersion = "1.0"
)

// Message types understood by the connector. VTube Studio defines many more;
// NewRequest accepts any of them.
const (
	MessageTypeAuthenticationTokenRequest    = "AuthenticationTokenRequest"
	MessageTypeAuthenticationTokenResponse   = "AuthenticationTokenResponse"
	MessageTypeAuthenticationRequest         = "AuthenticationRequest"
	MessageTypeAuthenticationResponse        = "AuthenticationResponse"
	MessageTypeHotkeysInCurrentModelRequest  = "HotkeysInCurrentModelRequest"
	MessageTypeHotkeysInCurrentModelResponse = "HotkeysInCurrentModelResponse"
	MessageTypeHotkeyTriggerRequest          = "HotkeyTriggerRequest"
	MessageTypeHotkeyTriggerResponse         = "HotkeyTriggerResponse"
	MessageTypeAPIError                      = "APIError"
)

// ErrorIDInvalidToken is reported when the authentication token was revoked
// or never issued by this VTube Studio instance.
const ErrorIDInvalidToken = 8

// Plugin identifies the caller to VTube Studio.
type Plugin struct {
	Name      string
	Developer string
}

type Request struct {
	APIName     string `json:"apiName"`
	APIVersion  string `json:"apiVersion"`
	RequestID   string `json:"requestID"`
	MessageType string `json:"messageType"`
	Data        any    `json:"data"`
}

type Response struct {
	APIName     string          `json:"apiName"`
	APIVersion  string          `json:"apiVersion"`
	Timestamp   int64           `json:"timestamp,omitempty"`
	RequestID   string          `json:"requestID"`
	MessageType string          `json:"messageType"`
	Data        json.RawMessage `json:"data"`
}

// NewRequest builds a request envelope with a fresh request id.
func NewRequest(messageType string, data any) Request {
	if data == nil {
		data = map[string]any{}
	}
	return Request{
		APIName:     APIName,
		APIVersion:  APIVersion,
		RequestID:   uuid.NewString(),
		MessageType: messageType,
		Data:        data,
	}
}

func NewTokenRequest(p Plugin) Request {
	return NewRequest(MessageTypeAuthenticationTokenRequest, map[string]any{
		"pluginName":      p.Name,
		"pluginDeveloper": p.Developer,
	})
}

func NewAuthenticationRequest(p Plugin, token string) Request {
	return NewRequest(MessageTypeAuthenticationRequest, map[string]any{
		"pluginName":          p.Name,
		"pluginDeveloper":     p.Developer,
		"authenticationToken": token,
	})
}

func NewHotkeysRequest() Request {
	return NewRequest(MessageTypeHotkeysInCurrentModelRequest, nil)
}

func NewHotkeyTriggerRequest(hotkeyID string) Request {
	return NewRequest(MessageTypeHotkeyTriggerRequest, map[string]any{"hotkeyID": hotkeyID})
}

type TokenResponseData struct {
	AuthenticationToken string `json:"authenticationToken"`
}

type AuthenticationResponseData struct {
	Authenticated bool   `json:"authenticated"`
	Reason        string `json:"reason"`
}

type APIErrorData struct {
	ErrorID int    `json:"errorID"`
	Message string `json:"message"`
}

type HotkeysResponseData struct {
	ModelLoaded      bool             `json:"modelLoaded"`
	ModelName        string           `json:"modelName"`
	ModelID          string           `json:"modelID"`
	AvailableHotkeys []map[string]any `json:"availableHotkeys"`
}

type HotkeyTriggerResponseData struct {
	HotkeyID string `json:"hotkeyID"`
}

// APIError is an APIError message returned by VTube Studio.
type APIError struct {
	ID      int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vts api error %d: %s", e.ID, e.Message)
}

// IsInvalidToken reports whether err carries the invalid token error id.
func IsInvalidToken(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.ID == ErrorIDInvalidToken
}

// Decode unmarshals the data payload into v.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("%s: empty data", r.MessageType)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode %s data: %w", r.MessageType, err)
	}
	return nil
}

// Err returns an *APIError when the response is an APIError message.
func (r *Response) Err() error {
	if r.MessageType != MessageTypeAPIError {
		return nil
	}
	var data APIErrorData
	if err := r.Decode(&data); err != nil {
		return &APIError{Message: "undecodable api error"}
	}
	return &APIError{ID: data.ErrorID, Message: data.Message}
}

// Message returns the human readable text carried by the payload, if any.
func (r *Response) Message() string {
	var data struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if len(r.Data) == 0 || json.Unmarshal(r.Data, &data) != nil {
		return ""
	}
	if data.Message != "" {
		return data.Message
	}
	return data.Reason
}
