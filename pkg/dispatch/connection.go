package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/tbaccus/hue-dispatch/pkg/codes"
	"github.com/tbaccus/hue-dispatch/pkg/hueid"
	log "github.com/tbaccus/hue-dispatch/pkg/logger"
	"github.com/tbaccus/hue-dispatch/pkg/transport"
)

// Transport performs one HTTPS PUT against the bridge and reports the
// response status. Implementations must honor ctx cancellation as their
// per-call timeout; the dispatcher never interrupts a call in progress.
type Transport interface {
	Perform(ctx context.Context, url, body string) (status int, err error)
}

// Options define connection parameters for one bridge target.
type Options struct {
	// BridgeAddress is the dotted-quad IPv4 address of the bridge.
	BridgeAddress string
	// BridgeID is the 16-hex-char bridge identity, pinned during TLS
	// verification.
	BridgeID string
	// AppKey is the 40-char application key sent with every request.
	AppKey string
	// RetryLimit is the number of additional delivery attempts after the
	// first before a request is dropped. Zero means a single attempt.
	RetryLimit int
	// RetryBackoff is the pause between attempts (default 1s).
	RetryBackoff time.Duration
	// RequestTimeout bounds a single transport call (default 5s).
	RequestTimeout time.Duration
	// RootCAPEM is the pinned root certificate handed to the default
	// transport. Required unless Transport is set.
	RootCAPEM []byte
	// Transport overrides the pinned-TLS HTTPS transport, mainly for tests.
	Transport Transport
}

// Connection owns the coalescing slots, the signal set, and the background
// worker for one bridge target. All methods are safe for concurrent use.
type Connection struct {
	baseURL string
	limit   int
	backoff time.Duration
	timeout time.Duration
	tr      Transport
	logger  *log.Entry

	mu      sync.Mutex
	current *Request
	next    *Request
	closed  bool

	signals   *signalSet
	done      chan struct{}
	closeOnce sync.Once
}

// NewConnection validates the bridge identity strings, builds the immutable
// base URL, and starts the delivery worker. The returned connection starts
// disconnected; nothing is delivered until ReportConnected.
func NewConnection(opts Options) (*Connection, error) {
	if err := hueid.ValidateBridgeAddress(opts.BridgeAddress); err != nil {
		return nil, err
	}
	if err := hueid.ValidateBridgeID(opts.BridgeID); err != nil {
		return nil, err
	}
	if err := hueid.ValidateAppKey(opts.AppKey); err != nil {
		return nil, err
	}
	if opts.RetryLimit < 0 {
		return nil, codes.New(codes.ErrInvalidArgument, "retry limit must be >= 0")
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 5 * time.Second
	}

	tr := opts.Transport
	if tr == nil {
		var err error
		tr, err = transport.New(transport.Options{
			BridgeID:  opts.BridgeID,
			AppKey:    opts.AppKey,
			RootCAPEM: opts.RootCAPEM,
			Timeout:   opts.RequestTimeout,
		})
		if err != nil {
			return nil, err
		}
	}

	c := &Connection{
		baseURL: "https://" + opts.BridgeAddress + ResourcePathPrefix,
		limit:   opts.RetryLimit,
		backoff: opts.RetryBackoff,
		timeout: opts.RequestTimeout,
		tr:      tr,
		logger:  log.WithFields(log.Fields{"component": "dispatch", "bridge": opts.BridgeAddress}),
		signals: newSignalSet(),
		done:    make(chan struct{}),
	}
	go c.run()
	return c, nil
}

// Submit hands a request to the connection. If the worker is idle the
// request becomes current and the worker is woken; otherwise it takes the
// pending slot, replacing whatever waited there. Submit never blocks on
// network I/O and only errors once the connection is closed.
func (c *Connection) Submit(req *Request) error {
	if req == nil {
		return codes.New(codes.ErrInvalidArgument, "request is nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return codes.New(codes.ErrInvalidState, "connection is closed")
	}
	switch {
	case c.current == nil:
		c.current = req
		c.signals.raiseTrigger()
	case c.next != nil:
		// Last write wins; the worker will observe the pending slot at its
		// next promotion, so no second trigger is needed.
		c.logger.WithField("path", c.next.ResourcePath()).Debug("pending request superseded")
		c.next = req
	default:
		c.next = req
	}
	return nil
}

// ReportConnected marks the network as usable and wakes the worker.
func (c *Connection) ReportConnected() {
	c.signals.setConnected(true)
}

// ReportDisconnected marks the network as unusable. An attempt already
// blocked inside the transport is left to finish or time out on its own;
// only new delivery rounds are held back until connectivity returns.
func (c *Connection) ReportDisconnected() {
	c.signals.setConnected(false)
}

// Drain blocks until both slots are empty or ctx is done. It does not stop
// new submissions; callers that want a quiet shutdown should stop producing
// first, then Drain, then Close.
func (c *Connection) Drain(ctx context.Context) error {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		c.mu.Lock()
		empty := c.current == nil && c.next == nil
		c.mu.Unlock()
		if empty {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close drains the worker and releases any resident requests. It raises
// Abort so a retry ladder stops at its next attempt boundary, then Exit,
// then waits for the worker to observe it. Close is idempotent.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.signals.raiseAbort()
		c.signals.raiseExit()
		<-c.done

		c.mu.Lock()
		c.current = nil
		c.next = nil
		c.mu.Unlock()
	})
}
