package vts_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nonx2/yuuna-server/pkg/vts"
	"github.com/nonx2/yuuna-server/pkg/vts/vtstest"
)

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		client *vts.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = vts.NewClient(500 * time.Millisecond)
	})

	It("should send one request and read one response", func() {
		server := vtstest.NewServer(func(req vts.Request) any {
			return vtstest.Reply(req, vts.MessageTypeHotkeyTriggerResponse, vts.HotkeyTriggerResponseData{
				HotkeyID: vtstest.StringField(req, "hotkeyID"),
			})
		})
		defer server.Close()

		conn, err := client.Dial(ctx, server.Host(), server.Port())
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		req := vts.NewHotkeyTriggerRequest("h1")
		resp, err := conn.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.RequestID).To(Equal(req.RequestID))
		Expect(resp.MessageType).To(Equal(vts.MessageTypeHotkeyTriggerResponse))
		Expect(resp.Err()).NotTo(HaveOccurred())

		var data vts.HotkeyTriggerResponseData
		Expect(resp.Decode(&data)).To(Succeed())
		Expect(data.HotkeyID).To(Equal("h1"))

		received := server.Requests("")
		Expect(received).To(HaveLen(1))
		Expect(received[0].APIName).To(Equal(vts.APIName))
		Expect(received[0].APIVersion).To(Equal(vts.APIVersion))
	})

	It("should close more than once without error", func() {
		server := vtstest.NewServer(func(req vts.Request) any { return nil })
		defer server.Close()

		conn, err := client.Dial(ctx, server.Host(), server.Port())
		Expect(err).NotTo(HaveOccurred())
		Expect(conn.Close()).To(Succeed())
		Expect(conn.Close()).To(Succeed())
	})

	It("should fail to dial a port with nothing listening", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		port := ln.Addr().(*net.TCPAddr).Port
		Expect(ln.Close()).To(Succeed())

		_, err = client.Dial(ctx, "127.0.0.1", port)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("127.0.0.1:%d", port)))
	})

	It("should time out when no response arrives", func() {
		server := vtstest.NewServer(func(req vts.Request) any {
			time.Sleep(2 * time.Second)
			return nil
		})
		defer server.Close()

		conn, err := client.Dial(ctx, server.Host(), server.Port())
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		start := time.Now()
		_, err = conn.Do(vts.NewHotkeysRequest())
		Expect(err).To(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 1500*time.Millisecond))
	})

	It("should fail to decode a message that is not an envelope", func() {
		server := vtstest.NewServer(func(req vts.Request) any { return "garbage" })
		defer server.Close()

		conn, err := client.Dial(ctx, server.Host(), server.Port())
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		_, err = conn.Do(vts.NewHotkeysRequest())
		Expect(err).To(MatchError(ContainSubstring("decode response")))
	})
})

var _ = Describe("Messages", func() {
	It("should give every request its own id", func() {
		a := vts.NewRequest(vts.MessageTypeHotkeysInCurrentModelRequest, nil)
		b := vts.NewRequest(vts.MessageTypeHotkeysInCurrentModelRequest, nil)
		Expect(a.RequestID).NotTo(Equal(b.RequestID))
		Expect(a.Data).To(Equal(map[string]any{}))
	})

	It("should turn APIError messages into errors", func() {
		req := vts.NewAuthenticationRequest(vts.Plugin{Name: "p", Developer: "d"}, "stale")
		resp := vtstest.Error(req, vts.ErrorIDInvalidToken, "Authentication token invalid.")

		err := resp.Err()
		Expect(err).To(HaveOccurred())
		Expect(vts.IsInvalidToken(err)).To(BeTrue())
		Expect(vts.IsInvalidToken(fmt.Errorf("wrapped: %w", err))).To(BeTrue())
		Expect(resp.Message()).To(Equal("Authentication token invalid."))

		var apiErr *vts.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.ID).To(Equal(8))
	})

	It("should not treat other error ids as an invalid token", func() {
		resp := vtstest.Error(vts.NewHotkeysRequest(), 50, "denied")
		Expect(vts.IsInvalidToken(resp.Err())).To(BeFalse())
		Expect(vts.IsInvalidToken(nil)).To(BeFalse())
	})

	It("should read the reason of an authentication response", func() {
		resp := vtstest.Reply(vts.NewHotkeysRequest(), vts.MessageTypeAuthenticationResponse, vts.AuthenticationResponseData{
			Authenticated: false,
			Reason:        "User denied",
		})
		Expect(resp.Err()).NotTo(HaveOccurred())
		Expect(resp.Message()).To(Equal("User denied"))
	})
})
