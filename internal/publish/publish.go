// Package publish sends state snapshots to a socket.io server.
package publish

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/simplemodel/internal/ctxlog"
	"github.com/vk/simplemodel/internal/simstate"
)

const (
	connectTimeout = 15 * time.Second
	// flushDelay leaves the transport time to write the event before the
	// socket is closed.
	flushDelay = 250 * time.Millisecond
)

// Target is where snapshots go.
type Target struct {
	URL                string
	Event              string
	Namespace          string
	InsecureSkipVerify bool
}

// ParseURL checks that raw is an absolute http(s) or ws(s) URL.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme %q in %s", u.Scheme, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL %s has no host", raw)
	}
	return u, nil
}

// Publish connects to the target, emits one event carrying snap and
// disconnects.
func Publish(ctx context.Context, target Target, snap *simstate.Snapshot) error {
	logger := ctxlog.FromContext(ctx).With("url", target.URL, "event", target.Event)
	if target.Event == "" {
		return fmt.Errorf("no event name to publish the snapshot under")
	}
	parsedURL, err := ParseURL(target.URL)
	if err != nil {
		return err
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if target.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(target.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		if err == nil {
			err = fmt.Errorf("%v", errs[0])
		}
		connectChan <- err
	})

	logger.Debug("Connecting...")
	io.Connect()
	defer io.Disconnect()

	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(connectTimeout):
		return fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}

	io.Emit(target.Event, snap)
	logger.Info("Snapshot published.", "snapshot_id", snap.ID, "elements", len(snap.Elements))

	select {
	case <-ctx.Done():
	case <-time.After(flushDelay):
	}
	return nil
}
