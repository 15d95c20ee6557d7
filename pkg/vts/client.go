package vts

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client opens connections to a VTube Studio instance. Every connection
// carries exactly one logical operation and is closed afterwards.
type Client struct {
	dialer  *websocket.Dialer
	timeout time.Duration
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		dialer: &websocket.Dialer{
			HandshakeTimeout: timeout,
		},
		timeout: timeout,
	}
}

func (c *Client) Dial(ctx context.Context, host string, port int) (*Conn, error) {
	u := url.URL{Scheme: "ws", Host: net.JoinHostPort(host, strconv.Itoa(port))}

	ws, resp, err := c.dialer.DialContext(ctx, u.String(), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}

	return &Conn{ws: ws, timeout: c.timeout}, nil
}

// Conn is a single VTube Studio session. It is not safe for concurrent use:
// VTube Studio answers one request at a time per socket.
type Conn struct {
	ws        *websocket.Conn
	timeout   time.Duration
	closeOnce sync.Once
}

// Do sends req and reads exactly one response.
func (c *Conn) Do(req Request) (*Response, error) {
	if err := c.ws.SetWriteDeadline(c.deadline()); err != nil {
		return nil, err
	}
	if err := c.ws.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("write %s: %w", req.MessageType, err)
	}

	if err := c.ws.SetReadDeadline(c.deadline()); err != nil {
		return nil, err
	}
	_, payload, err := c.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read response to %s: %w", req.MessageType, err)
	}

	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("decode response to %s: %w", req.MessageType, err)
	}

	if resp.RequestID != "" && resp.RequestID != req.RequestID {
		zap.S().Named("vts").Debugw("response request id mismatch", "sent", req.RequestID, "received", resp.RequestID)
	}

	return &resp, nil
}

// Close sends a close frame and releases the socket. Safe to call more than once.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) deadline() time.Time {
	if c.timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.timeout)
}
