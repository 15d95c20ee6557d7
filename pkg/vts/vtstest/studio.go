package vtstest

import (
	"fmt"
	"sync"

	"github.com/nonx2/yuuna-server/pkg/vts"
)

const (
	errorIDRequestDenied  = 50
	errorIDHotkeyNotFound = 351
)

// Studio mimics the subset of VTube Studio the connector uses: token
// issuing, token validation, hotkey listing and hotkey triggering.
type Studio struct {
	mu             sync.Mutex
	pending        []string
	valid          map[string]bool
	hotkeys        []map[string]any
	issued         int
	denyTokens     bool
	rejectAllAuths bool
	denyAuthReason string
}

// NewStudio returns a Studio that hands out the given tokens in order.
// Once they run out it makes up new ones.
func NewStudio(tokens ...string) *Studio {
	return &Studio{
		pending: tokens,
		valid:   map[string]bool{},
	}
}

// Accept marks tokens as already issued, as if from a previous run.
func (s *Studio) Accept(tokens ...string) *Studio {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tokens {
		s.valid[t] = true
	}
	return s
}

// Revoke makes a previously valid token fail authentication with error id 8.
func (s *Studio) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.valid, token)
}

// DenyTokenRequests makes the user "click deny" on every token request.
func (s *Studio) DenyTokenRequests() *Studio {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denyTokens = true
	return s
}

// DenyAuthentication answers every authentication request with
// authenticated=false and the given reason, as VTube Studio does when the
// user revokes the plugin while the token itself is still known.
func (s *Studio) DenyAuthentication(reason string) *Studio {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denyAuthReason = reason
	return s
}

// RejectAllTokens answers every authentication request with error id 8.
func (s *Studio) RejectAllTokens() *Studio {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectAllAuths = true
	return s
}

func (s *Studio) SetHotkeys(hotkeys ...map[string]any) *Studio {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotkeys = hotkeys
	return s
}

// Issued returns how many tokens were handed out.
func (s *Studio) Issued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}

// Handle implements Handler.
func (s *Studio) Handle(req vts.Request) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.MessageType {
	case vts.MessageTypeAuthenticationTokenRequest:
		if s.denyTokens {
			return Error(req, errorIDRequestDenied, "User has denied API access for your plugin.")
		}
		token := fmt.Sprintf("tok-%d", s.issued+1)
		if len(s.pending) > 0 {
			token, s.pending = s.pending[0], s.pending[1:]
		}
		s.issued++
		s.valid[token] = true
		return Reply(req, vts.MessageTypeAuthenticationTokenResponse, vts.TokenResponseData{AuthenticationToken: token})

	case vts.MessageTypeAuthenticationRequest:
		token := StringField(req, "authenticationToken")
		if s.rejectAllAuths || !s.valid[token] {
			return Error(req, vts.ErrorIDInvalidToken, "Authentication token invalid.")
		}
		if s.denyAuthReason != "" {
			return Reply(req, vts.MessageTypeAuthenticationResponse, vts.AuthenticationResponseData{
				Authenticated: false,
				Reason:        s.denyAuthReason,
			})
		}
		return Reply(req, vts.MessageTypeAuthenticationResponse, vts.AuthenticationResponseData{
			Authenticated: true,
			Reason:        "Token valid. The plugin is authenticated for the duration of this session.",
		})

	case vts.MessageTypeHotkeysInCurrentModelRequest:
		hotkeys := s.hotkeys
		if hotkeys == nil {
			hotkeys = []map[string]any{}
		}
		return Reply(req, vts.MessageTypeHotkeysInCurrentModelResponse, vts.HotkeysResponseData{
			ModelLoaded:      true,
			ModelName:        "Yuna",
			ModelID:          "yuna-model",
			AvailableHotkeys: hotkeys,
		})

	case vts.MessageTypeHotkeyTriggerRequest:
		id := StringField(req, "hotkeyID")
		for _, h := range s.hotkeys {
			if h["hotkeyID"] == id {
				return Reply(req, vts.MessageTypeHotkeyTriggerResponse, vts.HotkeyTriggerResponseData{HotkeyID: id})
			}
		}
		return Error(req, errorIDHotkeyNotFound, fmt.Sprintf("Couldn't find hotkey with name or ID %q.", id))
	}

	return Error(req, 2, "unknown message type "+req.MessageType)
}
