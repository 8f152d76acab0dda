package middleware

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// errBodyTooLarge is returned when an inflated request body exceeds the configured cap
var errBodyTooLarge = errors.New("request body too large")

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// MinLength is the smallest response body that gets gzipped
	MinLength int
	// Level is the gzip level, see compress/gzip
	Level int
	// MaxRequestBody caps the inflated size of gzip request bodies
	MaxRequestBody int64
	// SkipTypes lists Content-Type prefixes that are never gzipped
	SkipTypes []string
}

// DefaultCompressionConfig returns the default compression configuration.
// Conversion responses are tiny, so in practice only the swagger assets get compressed.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinLength:      1024,
		Level:          gzip.DefaultCompression,
		MaxRequestBody: 1 << 20,
		SkipTypes:      []string{"image/", "video/", "audio/"},
	}
}

// Compression returns a middleware that inflates gzip request bodies and
// gzips responses for clients that accept it
func Compression(cfg CompressionConfig) gin.HandlerFunc {
	pool := &sync.Pool{
		New: func() any {
			gz, err := gzip.NewWriterLevel(io.Discard, cfg.Level)
			if err != nil {
				gz = gzip.NewWriter(io.Discard)
			}
			return gz
		},
	}

	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Content-Encoding"), "gzip") {
			body, err := inflate(c.Request.Body, cfg.MaxRequestBody)
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = int64(len(body))
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		w := &bufferedGzipWriter{ResponseWriter: c.Writer, cfg: &cfg, pool: pool}
		c.Writer = w
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		if err := w.flushBody(); err != nil {
			_ = c.Error(err)
		}
	}
}

func inflate(body io.Reader, limit int64) ([]byte, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	data, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

// bufferedGzipWriter holds the body until the handler is done, so the
// encoding can be chosen from the final size and content type
type bufferedGzipWriter struct {
	gin.ResponseWriter
	cfg  *CompressionConfig
	pool *sync.Pool
	body bytes.Buffer
}

func (w *bufferedGzipWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *bufferedGzipWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *bufferedGzipWriter) compressible() bool {
	if w.body.Len() < w.cfg.MinLength {
		return false
	}
	contentType := w.Header().Get("Content-Type")
	for _, prefix := range w.cfg.SkipTypes {
		if strings.HasPrefix(contentType, prefix) {
			return false
		}
	}
	return true
}

func (w *bufferedGzipWriter) flushBody() error {
	if w.body.Len() == 0 {
		return nil
	}

	if !w.compressible() {
		_, err := w.ResponseWriter.Write(w.body.Bytes())
		return err
	}

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")

	gz := w.pool.Get().(*gzip.Writer)
	defer w.pool.Put(gz)
	gz.Reset(w.ResponseWriter)

	if _, err := gz.Write(w.body.Bytes()); err != nil {
		return err
	}
	return gz.Close()
}

// Flush is a no-op; the body is written once the handler returns
func (w *bufferedGzipWriter) Flush() {}

func (w *bufferedGzipWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.Hijack()
}

func (w *bufferedGzipWriter) Written() bool {
	return w.ResponseWriter.Written() || w.body.Len() > 0
}
