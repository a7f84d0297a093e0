package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerSource supplies the stored token for upstream calls.
type BearerSource interface {
	Token(ctx context.Context) string
}

// Proxy forwards portal data calls to the resource services. The services
// own all business rules and authorization; the proxy only attaches the
// stored bearer token and strips the portal prefix.
type Proxy struct {
	rp     *httputil.ReverseProxy
	prefix string
}

// New builds a proxy for the upstream base URL. prefix (e.g. "/api") is
// removed from the forwarded path.
func New(upstream, prefix string, bearer BearerSource) (*Proxy, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("gateway: invalid upstream url: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("gateway: upstream url must be absolute, got %q", upstream)
	}

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, prefix)
			if pr.Out.URL.Path == "" {
				pr.Out.URL.Path = "/"
			}
			pr.Out.Host = target.Host

			if bearer != nil {
				if tok := bearer.Token(pr.In.Context()); tok != "" {
					pr.Out.Header.Set("Authorization", "Bearer "+tok)
				}
			}
		},
	}

	return &Proxy{rp: rp, prefix: prefix}, nil
}

// Handler adapts the proxy for Gin route groups.
func (p *Proxy) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		p.rp.ServeHTTP(c.Writer, c.Request)
	}
}

// ErrorHandler lets callers observe upstream failures; default behavior is
// the stdlib 502.
func (p *Proxy) SetErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) {
	p.rp.ErrorHandler = fn
}
