package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/internal/models"
	"github.com/nonx2/yuuna-server/internal/store"
	"github.com/nonx2/yuuna-server/pkg/vts"
)

// maxInvalidTokenRetries bounds how often an operation starts over after
// VTube Studio rejected the stored token.
const maxInvalidTokenRetries = 1

// TokenStore persists the single VTube Studio token.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

type callState string

const (
	callStateIdle           callState = "idle"
	callStateConnecting     callState = "connecting"
	callStateTokenRequest   callState = "token-request"
	callStateAuthenticating callState = "authenticating"
	callStateExecuting      callState = "executing"
	callStateDone           callState = "done"
	callStateFailed         callState = "failed"
)

// VTSService talks to VTube Studio. Every operation opens its own connection,
// authenticates, runs at most one payload request and closes the connection.
type VTSService struct {
	client *vts.Client
	tokens TokenStore
	plugin vts.Plugin

	// opMu serializes operations so only one socket is open at a time.
	opMu sync.Mutex

	mu            sync.Mutex
	settings      models.VTSSettings
	token         string
	connected     bool
	authenticated bool
	hotkeys       []models.Hotkey
}

func NewVTSService(cfg config.VTS, client *vts.Client, tokens TokenStore) *VTSService {
	v := &VTSService{
		client:   client,
		tokens:   tokens,
		plugin:   vts.Plugin{Name: cfg.PluginName, Developer: cfg.PluginDeveloper},
		settings: models.VTSSettings{Host: cfg.Host, Port: cfg.Port},
		hotkeys:  []models.Hotkey{},
	}

	token, err := tokens.Get(context.Background())
	switch {
	case err == nil:
		v.token = token
		zap.S().Named("vts").Info("vts connector initialized with stored token")
	case errors.Is(err, store.ErrNotFound):
		zap.S().Named("vts").Info("vts connector initialized, no token stored")
	default:
		zap.S().Named("vts").Warnw("failed to read stored vts token", "error", err)
	}

	return v
}

// Status returns a snapshot of the connector state.
func (v *VTSService) Status() models.VTSStatus {
	v.mu.Lock()
	defer v.mu.Unlock()

	return models.VTSStatus{
		Settings:      v.settings,
		Connected:     v.connected,
		Authenticated: v.authenticated,
		HasToken:      v.token != "",
	}
}

// SetPort points the connector at another VTube Studio instance.
func (v *VTSService) SetPort(port int) error {
	if port < 1 || port > 65535 {
		return ErrInvalidPort
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.settings.Port != port {
		zap.S().Named("vts").Infow("vts port changed", "from", v.settings.Port, "to", port)
	}
	v.settings.Port = port
	return nil
}

// Authenticate runs the handshake alone. Connected and Authenticated reflect
// the outcome of the last call. The flags are written before opMu is released
// so a concurrent ClearToken always lands after them.
func (v *VTSService) Authenticate(ctx context.Context) error {
	v.opMu.Lock()
	defer v.opMu.Unlock()

	_, err := v.run(ctx, nil)

	v.mu.Lock()
	v.connected = err == nil
	v.authenticated = err == nil
	v.mu.Unlock()

	if err != nil {
		zap.S().Named("vts").Warnw("vts authentication failed", "error", err)
		return err
	}

	zap.S().Named("vts").Info("authenticated with vts")
	return nil
}

// GetHotkeys lists the hotkeys of the current model and replaces the cache.
// On failure the returned slice is empty and the cache is left untouched.
func (v *VTSService) GetHotkeys(ctx context.Context) ([]models.Hotkey, error) {
	req := vts.NewHotkeysRequest()
	resp, err := v.execute(ctx, &req)
	if err != nil {
		return []models.Hotkey{}, err
	}

	if apiErr := resp.Err(); apiErr != nil {
		return []models.Hotkey{}, &RejectedError{Stage: "hotkey listing", Reason: resp.Message(), Err: apiErr}
	}
	if resp.MessageType != vts.MessageTypeHotkeysInCurrentModelResponse {
		return []models.Hotkey{}, fmt.Errorf("%w: %s", ErrUnexpectedResponse, resp.MessageType)
	}

	var data vts.HotkeysResponseData
	if err := resp.Decode(&data); err != nil {
		return []models.Hotkey{}, &TransportError{Err: err}
	}

	hotkeys := make([]models.Hotkey, 0, len(data.AvailableHotkeys))
	for _, h := range data.AvailableHotkeys {
		hotkeys = append(hotkeys, models.Hotkey(h))
	}

	v.mu.Lock()
	v.hotkeys = hotkeys
	v.mu.Unlock()

	zap.S().Named("vts").Debugw("hotkeys refreshed", "model", data.ModelName, "count", len(hotkeys))

	return v.CachedHotkeys(), nil
}

// CachedHotkeys returns the result of the last successful listing.
func (v *VTSService) CachedHotkeys() []models.Hotkey {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.Hotkey, len(v.hotkeys))
	copy(out, v.hotkeys)
	return out
}

// TriggerHotkey executes a hotkey and returns the id VTube Studio confirmed.
func (v *VTSService) TriggerHotkey(ctx context.Context, hotkeyID string) (string, error) {
	if hotkeyID == "" {
		return "", ErrEmptyHotkeyID
	}

	req := vts.NewHotkeyTriggerRequest(hotkeyID)
	resp, err := v.execute(ctx, &req)
	if err != nil {
		return "", err
	}

	if apiErr := resp.Err(); apiErr != nil {
		return "", &RejectedError{Stage: "hotkey trigger", Reason: resp.Message(), Err: apiErr}
	}
	if resp.MessageType != vts.MessageTypeHotkeyTriggerResponse {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedResponse, resp.MessageType)
	}

	var data vts.HotkeyTriggerResponseData
	if err := resp.Decode(&data); err != nil || data.HotkeyID == "" {
		data.HotkeyID = hotkeyID
	}

	zap.S().Named("vts").Debugw("hotkey triggered", "hotkey_id", data.HotkeyID)
	return data.HotkeyID, nil
}

// ClearToken forgets the token in memory and in the store. Store errors are
// logged and ignored.
func (v *VTSService) ClearToken(ctx context.Context) {
	v.opMu.Lock()
	defer v.opMu.Unlock()

	v.mu.Lock()
	v.token = ""
	v.connected = false
	v.authenticated = false
	v.mu.Unlock()

	if err := v.tokens.Delete(ctx); err != nil {
		zap.S().Named("vts").Warnw("failed to delete stored vts token", "error", err)
	}
	zap.S().Named("vts").Info("vts token cleared")
}

// execute runs the handshake and, when req is set, the payload request, while
// holding opMu.
func (v *VTSService) execute(ctx context.Context, req *vts.Request) (*vts.Response, error) {
	v.opMu.Lock()
	defer v.opMu.Unlock()

	return v.run(ctx, req)
}

// run must be called with opMu held. When VTube Studio rejects the token the
// token is dropped and the whole sequence starts over, at most
// maxInvalidTokenRetries times.
func (v *VTSService) run(ctx context.Context, req *vts.Request) (*vts.Response, error) {
	var rejected error
	for attempt := 0; attempt <= maxInvalidTokenRetries; attempt++ {
		resp, err := v.executeOnce(ctx, req)
		if !errors.Is(err, errInvalidToken) {
			return resp, err
		}

		rejected = err
		metrics.vtsTokenInvalidatedCounter.Inc()
		zap.S().Named("vts").Infow("vts rejected the token, requesting a new one", "attempt", attempt+1)
		v.dropToken(ctx)
	}

	var apiErr *vts.APIError
	errors.As(rejected, &apiErr)
	return nil, &RejectedError{
		Stage:  "authentication",
		Reason: "token rejected after re-issue",
		Err:    fmt.Errorf("%w: %w", ErrTokenInvalidated, apiErr),
	}
}

func (v *VTSService) executeOnce(ctx context.Context, req *vts.Request) (resp *vts.Response, err error) {
	v.mu.Lock()
	settings, token := v.settings, v.token
	v.mu.Unlock()

	c := &call{state: callStateIdle, log: zap.S().Named("vts")}
	defer func() {
		if err != nil {
			c.to(callStateFailed)
			return
		}
		c.to(callStateDone)
	}()

	c.to(callStateConnecting)
	conn, err := v.client.Dial(ctx, settings.Host, settings.Port)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = conn.Close() }()

	if token == "" {
		c.to(callStateTokenRequest)
		if token, err = v.requestToken(ctx, conn); err != nil {
			return nil, err
		}
	}

	c.to(callStateAuthenticating)
	authResp, err := v.do(conn, vts.NewAuthenticationRequest(v.plugin, token))
	if err != nil {
		return nil, err
	}
	if apiErr := authResp.Err(); apiErr != nil {
		if vts.IsInvalidToken(apiErr) {
			return nil, fmt.Errorf("%w: %w", errInvalidToken, apiErr)
		}
		return nil, &RejectedError{Stage: "authentication", Reason: authResp.Message(), Err: apiErr}
	}

	var auth vts.AuthenticationResponseData
	if authResp.MessageType != vts.MessageTypeAuthenticationResponse || authResp.Decode(&auth) != nil || !auth.Authenticated {
		reason := authResp.Message()
		if reason == "" {
			reason = "not authenticated"
		}
		return nil, &RejectedError{Stage: "authentication", Reason: reason}
	}

	if req == nil {
		return nil, nil
	}

	c.to(callStateExecuting)
	return v.do(conn, *req)
}

// requestToken asks VTube Studio for a new token, persists it and keeps it in memory.
func (v *VTSService) requestToken(ctx context.Context, conn *vts.Conn) (string, error) {
	resp, err := v.do(conn, vts.NewTokenRequest(v.plugin))
	if err != nil {
		return "", err
	}

	var data vts.TokenResponseData
	if resp.MessageType != vts.MessageTypeAuthenticationTokenResponse || resp.Decode(&data) != nil || data.AuthenticationToken == "" {
		reason := resp.Message()
		if reason == "" {
			reason = "unknown"
		}
		return "", &RejectedError{Stage: "token request", Reason: reason, Err: resp.Err()}
	}

	metrics.vtsTokenIssuedCounter.Inc()

	if err := v.tokens.Save(ctx, data.AuthenticationToken); err != nil {
		zap.S().Named("vts").Warnw("failed to persist vts token, keeping it in memory only", "error", err)
	}

	v.mu.Lock()
	v.token = data.AuthenticationToken
	v.mu.Unlock()

	zap.S().Named("vts").Info("received new vts token")
	return data.AuthenticationToken, nil
}

func (v *VTSService) do(conn *vts.Conn, req vts.Request) (*vts.Response, error) {
	resp, err := conn.Do(req)
	if err != nil {
		metrics.vtsRequestCounter.WithLabelValues(req.MessageType, resultTransportError).Inc()
		return nil, &TransportError{Err: err}
	}

	result := resultOK
	if resp.MessageType == vts.MessageTypeAPIError {
		result = resultAPIError
	}
	metrics.vtsRequestCounter.WithLabelValues(req.MessageType, result).Inc()

	return resp, nil
}

func (v *VTSService) dropToken(ctx context.Context) {
	v.mu.Lock()
	v.token = ""
	v.mu.Unlock()

	if err := v.tokens.Delete(ctx); err != nil {
		zap.S().Named("vts").Warnw("failed to delete rejected vts token", "error", err)
	}
}

// call tracks the state of a single connection for logging.
type call struct {
	state callState
	log   *zap.SugaredLogger
}

func (c *call) to(state callState) {
	c.log.Debugw("vts call state transition", "from", c.state, "to", state)
	c.state = state
}
