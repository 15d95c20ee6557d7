package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/internal/server"
	"github.com/nonx2/yuuna-server/internal/server/middlewares"
)

var _ = Describe("Server", func() {
	register := func(router *gin.RouterGroup) {
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, middlewares.GetRequestID(c))
		})
	}

	serve := func(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	Context("in dev mode", func() {
		var h http.Handler

		BeforeEach(func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			srv, err := server.NewServer(cfg, register)
			Expect(err).NotTo(HaveOccurred())
			h = srv.Handler()
		})

		It("should mount handlers under /api/v1", func() {
			w := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("should generate a request id", func() {
			w := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
			id := w.Header().Get(middlewares.RequestIDHeader)
			Expect(id).NotTo(BeEmpty())
			Expect(w.Body.String()).To(Equal(id))
		})

		It("should keep the caller's request id", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
			req.Header.Set(middlewares.RequestIDHeader, "abc")

			w := serve(h, req)
			Expect(w.Header().Get(middlewares.RequestIDHeader)).To(Equal("abc"))
			Expect(w.Body.String()).To(Equal("abc"))
		})

		It("should allow cross origin requests", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
			req.Header.Set("Origin", "http://localhost:5173")

			w := serve(h, req)
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("should expose prometheus metrics", func() {
			w := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("go_goroutines"))
		})
	})

	Context("in prod mode", func() {
		var h http.Handler

		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>yuna</html>"), 0o600)).To(Succeed())

			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithServer(*config.NewServerWithOptionsAndDefaults(
					config.WithServerMode(string(config.ServerModeProd)),
					config.WithStaticsFolder(dir),
				)),
			)
			srv, err := server.NewServer(cfg, register)
			Expect(err).NotTo(HaveOccurred())
			h = srv.Handler()
		})

		AfterEach(func() {
			gin.SetMode(gin.TestMode)
		})

		It("should fall back to the index page", func() {
			w := serve(h, httptest.NewRequest(http.MethodGet, "/some/page", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("yuna"))
		})

		It("should return 404 for unknown api routes", func() {
			w := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	It("should require a statics folder in prod mode", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithServer(*config.NewServerWithOptionsAndDefaults(
				config.WithServerMode(string(config.ServerModeProd)),
			)),
		)
		_, err := server.NewServer(cfg, register)
		Expect(err).To(HaveOccurred())
	})
})
