package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/internal/models"
	"github.com/nonx2/yuuna-server/internal/services"
)

var _ = Describe("TTS Service", func() {
	var (
		ctx context.Context
		cfg config.TTS
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.TTS{DefaultSpeaker: 2, RequestTimeout: 2 * time.Second}
	})

	It("should reject empty text without calling the engine", func() {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()
		cfg.URL = server.URL

		_, err := services.NewTTSService(cfg).Synthesize(ctx, models.Speech{})
		Expect(err).To(Equal(services.ErrEmptyText))
		Expect(called).To(BeFalse())
	})

	It("should run audio_query then synthesis", func() {
		var synthesisBody map[string]any
		var speakers []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.Method).To(Equal(http.MethodPost))
			speakers = append(speakers, r.URL.Query().Get("speaker"))

			switch r.URL.Path {
			case "/audio_query":
				Expect(r.URL.Query().Get("text")).To(Equal("hello"))
				_, _ = w.Write([]byte(`{"accent_phrases":[],"speedScale":1.0}`))
			case "/synthesis":
				body, _ := io.ReadAll(r.Body)
				Expect(json.Unmarshal(body, &synthesisBody)).To(Succeed())
				w.Header().Set("Content-Type", "audio/wav")
				_, _ = w.Write([]byte("RIFF-wav"))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()
		cfg.URL = server.URL

		audio, err := services.NewTTSService(cfg).Synthesize(ctx, models.Speech{Text: "hello"})
		Expect(err).NotTo(HaveOccurred())
		Expect(audio.MimeType).To(Equal("audio/wav"))
		Expect(string(audio.Data)).To(Equal("RIFF-wav"))
		Expect(speakers).To(Equal([]string{"2", "2"}))
		Expect(synthesisBody).To(HaveKeyWithValue("speedScale", 1.0))
	})

	It("should use the requested speaker", func() {
		var speaker string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			speaker = r.URL.Query().Get("speaker")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()
		cfg.URL = server.URL

		_, err := services.NewTTSService(cfg).Synthesize(ctx, models.Speech{Text: "hi", Speaker: speakerID(8)})
		Expect(err).NotTo(HaveOccurred())
		Expect(speaker).To(Equal("8"))
	})

	It("should send speaker 0 instead of the default", func() {
		var speakers []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			speakers = append(speakers, r.URL.Query().Get("speaker"))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()
		cfg.URL = server.URL

		_, err := services.NewTTSService(cfg).Synthesize(ctx, models.Speech{Text: "hi", Speaker: speakerID(0)})
		Expect(err).NotTo(HaveOccurred())
		Expect(speakers).To(Equal([]string{"0", "0"}))
	})

	It("should report the failing stage", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/synthesis" {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()
		cfg.URL = server.URL

		_, err := services.NewTTSService(cfg).Synthesize(ctx, models.Speech{Text: "hi"})
		var engineErr *services.EngineError
		Expect(errors.As(err, &engineErr)).To(BeTrue())
		Expect(engineErr.Stage).To(Equal("synthesis"))
		Expect(engineErr.StatusCode).To(Equal(http.StatusUnprocessableEntity))
	})

	It("should report an unavailable engine", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		cfg.URL = "http://" + ln.Addr().String()
		Expect(ln.Close()).To(Succeed())

		_, err = services.NewTTSService(cfg).Synthesize(ctx, models.Speech{Text: "hi"})
		Expect(errors.Is(err, services.ErrEngineUnavailable)).To(BeTrue())
	})
})

func speakerID(id int) *int {
	return &id
}
