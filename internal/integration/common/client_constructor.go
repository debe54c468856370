package common

import (
	"net/http"

	"github.com/umstad/quizgen/internal/config"
	pkgHTTP "github.com/umstad/quizgen/pkg/http"
	"go.uber.org/zap"
)

func httpOptions(cfg config.HTTPClientConfig) []pkgHTTP.HttpOpts {
	return []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithMaxIdleConnsPerHost(cfg.MaxIdleConnsPerHost),
		pkgHTTP.WithRequestLogging(),
	}
}

// NewAPIKeyConnector builds a JSON connector that sends the token in the given header.
func NewAPIKeyConnector(cfg config.HTTPClientConfig, header string, logger *zap.Logger) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	opts := append(httpOptions(cfg), pkgHTTP.WithAPIKey(header, cfg.Token))
	return pkgHTTP.NewConnector(connCfg, opts...)
}

// NewHTTPClient builds a plain client with the configured timeouts for SDKs
// that handle authentication themselves.
func NewHTTPClient(cfg config.HTTPClientConfig) *http.Client {
	return pkgHTTP.NewClient(httpOptions(cfg)...)
}
