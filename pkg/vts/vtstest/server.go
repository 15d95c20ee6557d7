// Package vtstest provides an in-process VTube Studio API server for tests.
package vtstest

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nonx2/yuuna-server/pkg/vts"
)

// Handler answers one request. The returned value is written back as JSON.
type Handler func(req vts.Request) any

// Server accepts websocket connections and answers every request with its Handler.
type Server struct {
	*httptest.Server

	handler  Handler
	upgrader websocket.Upgrader

	mu          sync.Mutex
	connections int
	requests    []vts.Request
}

func NewServer(h Handler) *Server {
	s := &Server{
		handler:  h,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.connections++
	s.mu.Unlock()

	for {
		var req vts.Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		if err := conn.WriteJSON(s.handler(req)); err != nil {
			return
		}
	}
}

func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.Listener.Addr().String())
	return host
}

func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.Listener.Addr().String())
	p, _ := strconv.Atoi(port)
	return p
}

// Connections returns how many websocket sessions were opened.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connections
}

// Requests returns the received requests of the given message type, or all
// of them when messageType is empty.
func (s *Server) Requests(messageType string) []vts.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []vts.Request{}
	for _, r := range s.requests {
		if messageType == "" || r.MessageType == messageType {
			out = append(out, r)
		}
	}
	return out
}

// Reply builds a response envelope for req.
func Reply(req vts.Request, messageType string, data any) vts.Response {
	raw, _ := json.Marshal(data)
	return vts.Response{
		APIName:     vts.APIName,
		APIVersion:  vts.APIVersion,
		RequestID:   req.RequestID,
		MessageType: messageType,
		Data:        raw,
	}
}

// Error builds an APIError response for req.
func Error(req vts.Request, id int, message string) vts.Response {
	return Reply(req, vts.MessageTypeAPIError, vts.APIErrorData{ErrorID: id, Message: message})
}

// StringField reads a string field from the request data.
func StringField(req vts.Request, name string) string {
	data, ok := req.Data.(map[string]any)
	if !ok {
		return ""
	}
	v, _ := data[name].(string)
	return v
}
