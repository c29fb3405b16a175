package dispatch

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	log "github.com/tbaccus/hue-dispatch/pkg/logger"
	"github.com/tbaccus/hue-dispatch/pkg/tracing"
)

// run is the single worker goroutine. It blocks on the signal set, and when
// both connectivity and a current request are present it enters the
// delivery loop. Exit is terminal.
func (c *Connection) run() {
	defer close(c.done)
	for {
		if c.signals.wait() {
			return
		}
		if !c.signals.isConnected() {
			continue
		}
		c.deliverLoop()
	}
}

// deliverLoop delivers the current request, promotes the pending slot, and
// keeps going as long as promotion yields another request.
func (c *Connection) deliverLoop() {
	for {
		c.mu.Lock()
		req := c.current
		c.mu.Unlock()
		if req == nil {
			return
		}
		c.deliver(req)
		if c.promote() == nil {
			return
		}
	}
}

// deliver runs the bounded attempt ladder for one request. Transport
// failures are retried after a fixed backoff; a non-200 response is
// terminal for the request. Failures are logged, never reported back to the
// submitter.
func (c *Connection) deliver(req *Request) {
	tracer := tracing.Tracer("hue-dispatch/dispatch")
	url := c.baseURL + req.ResourcePath()

	for attempt := 0; attempt <= c.limit; attempt++ {
		if c.signals.interrupted() {
			c.logger.WithField("path", req.ResourcePath()).Debug("delivery abandoned")
			return
		}

		ctx, span := tracer.Start(context.Background(), "dispatch.deliver",
			trace.WithAttributes(
				attribute.String("hue.resource_path", req.ResourcePath()),
				attribute.Int("hue.attempt", attempt),
			))
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		status, err := c.tr.Perform(callCtx, url, req.Body())
		cancel()

		if err != nil {
			span.RecordError(err)
			span.End()
			if attempt < c.limit {
				c.logger.WithError(err).Infof("request attempt #%d failed, retrying", attempt+1)
				time.Sleep(c.backoff)
				continue
			}
			c.logger.WithError(err).Errorf("request attempt #%d failed, max attempts reached, dropping request", attempt+1)
			return
		}
		span.End()

		if status != http.StatusOK {
			c.logger.WithFields(log.Fields{"status": status, "path": req.ResourcePath()}).
				Error("bridge response status not 200 OK, dropping request")
			return
		}

		c.signals.clearAbort()
		c.logger.WithField("path", req.ResourcePath()).Debug("request delivered")
		return
	}
}

// promote clears the current slot, moves the pending request into it, and
// re-raises Trigger when one was waiting. Abort only ever spans a single
// request, so it is cleared here too. Called only by the worker, after an
// attempt ladder concludes.
func (c *Connection) promote() *Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.next
	c.next = nil
	if c.current != nil {
		c.signals.raiseTrigger()
	}
	c.signals.clearAbort()
	return c.current
}
