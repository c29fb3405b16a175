// Package transport performs single HTTPS PUT requests against a Hue
// bridge. The TLS session is pinned: only the provisioned Signify root CA
// is trusted, and the server certificate must carry the expected bridge
// identity as its name. Bridges sit on private addresses, so normal
// hostname verification would never succeed.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tbaccus/hue-dispatch/pkg/codes"
	"github.com/tbaccus/hue-dispatch/pkg/hueid"
	log "github.com/tbaccus/hue-dispatch/pkg/logger"
	"github.com/tbaccus/hue-dispatch/pkg/tracing"
)

// maxResponseLength bounds how much of a bridge response is read back; the
// remainder is discarded. Responses only matter for logging.
const maxResponseLength = 512

// Options define transport parameters for one bridge target.
type Options struct {
	// BridgeID is the 16-hex-char bridge identity expected as the TLS
	// server name.
	BridgeID string
	// AppKey is sent as the hue-application-key header on every request.
	AppKey string
	// RootCAPEM is the pinned root certificate in PEM form, as shipped
	// with the device image (LoadRootCA reads it from disk).
	RootCAPEM []byte
	// Timeout bounds a whole request/response exchange (default 5s).
	Timeout time.Duration
}

// Client performs pinned-TLS PUT requests. Safe for concurrent use,
// although the dispatcher only ever issues one call at a time.
type Client struct {
	hc     *http.Client
	appKey string
	logger *log.Entry
}

// LoadRootCA reads a pinned root CA PEM from disk.
func LoadRootCA(path string) ([]byte, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, codes.Wrap(codes.ErrInvalidArgument, err, "read root CA %s", path)
	}
	return pem, nil
}

// New builds a Client for one bridge.
func New(opts Options) (*Client, error) {
	if err := hueid.ValidateBridgeID(opts.BridgeID); err != nil {
		return nil, err
	}
	if err := hueid.ValidateAppKey(opts.AppKey); err != nil {
		return nil, err
	}
	if len(opts.RootCAPEM) == 0 {
		return nil, codes.New(codes.ErrInvalidArgument, "pinned root CA is required")
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(opts.RootCAPEM) {
		return nil, codes.New(codes.ErrEncoding, "pinned root CA is not valid PEM")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	return &Client{
		hc: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					RootCAs:    pool,
					ServerName: opts.BridgeID,
				},
			},
			// The dispatcher speaks plain PUT; anything that answers with a
			// redirect is not a Hue bridge.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		appKey: opts.AppKey,
		logger: log.WithField("component", "transport"),
	}, nil
}

// Perform executes one PUT and returns the response status. A non-nil error
// means the exchange itself failed (connection, TLS, timeout); status is
// only meaningful when err is nil.
func (c *Client) Perform(ctx context.Context, url, body string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, strings.NewReader(body))
	if err != nil {
		return 0, codes.Wrap(codes.ErrTransport, err, "build request")
	}
	req.Header.Set("hue-application-key", c.appKey)
	req.Header.Set("Content-Type", "application/json")
	tracing.InjectHeaders(ctx, req.Header)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, codes.Wrap(codes.ErrTransport, err, "perform request")
	}
	defer resp.Body.Close()

	if c.logger.Logger.IsLevelEnabled(log.DebugLevel) {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseLength))
		c.logger.WithContext(ctx).WithFields(log.Fields{"status": resp.StatusCode, "url": url}).
			Debugf("bridge response: %s", data)
	}
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
