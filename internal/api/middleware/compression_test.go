package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestCompression_Responses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		accept       string
		contentType  string
		size         int
		wantEncoding string
	}{
		{name: "LargeJSON", accept: "gzip, deflate", contentType: "application/json", size: 4096, wantEncoding: "gzip"},
		{name: "SmallJSON", accept: "gzip", contentType: "application/json", size: 100},
		{name: "NoAcceptEncoding", contentType: "text/html", size: 4096},
		{name: "SkippedType", accept: "gzip", contentType: "image/png", size: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := strings.Repeat("z", tt.size)

			r := gin.New()
			r.Use(Compression(DefaultCompressionConfig()))
			r.GET("/zones", func(c *gin.Context) {
				c.Data(http.StatusOK, tt.contentType, []byte(payload))
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/zones", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantEncoding, w.Header().Get("Content-Encoding"))

			body := w.Body.Bytes()
			if tt.wantEncoding == "gzip" {
				zr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
			}
			assert.Equal(t, payload, string(body))
		})
	}
}

func TestCompression_PooledWritersAreReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Compression(DefaultCompressionConfig()))
	r.GET("/:ch", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Repeat(c.Param("ch"), 2048))
	})

	for _, ch := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/"+ch, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		r.ServeHTTP(w, req)

		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat(ch, 2048), string(body))
	}
}

func TestCompression_Requests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const convertBody = `{"time":"23:45:00","target":"LHST"}`

	tests := []struct {
		name       string
		body       []byte
		maxBody    int64
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Inflated",
			body:       gzipBytes(t, convertBody),
			maxBody:    1 << 20,
			wantStatus: http.StatusOK,
			wantBody:   convertBody,
		},
		{
			name:       "NotGzip",
			body:       []byte(convertBody),
			maxBody:    1 << 20,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "TooLarge",
			body:       gzipBytes(t, strings.Repeat("x", 64)),
			maxBody:    16,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCompressionConfig()
			cfg.MaxRequestBody = tt.maxBody

			r := gin.New()
			r.Use(Compression(cfg))
			r.POST("/convert", func(c *gin.Context) {
				body, err := io.ReadAll(c.Request.Body)
				require.NoError(t, err)
				c.String(http.StatusOK, string(body))
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/convert", bytes.NewReader(tt.body))
			req.Header.Set("Content-Encoding", "gzip")
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
