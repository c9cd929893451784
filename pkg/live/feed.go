// Package live manages the persistent WebSocket connection that delivers
// measurements for registered devices.
package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/co2-monitor/pkg/common"
	"nhooyr.io/websocket"
)

type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	ErrClosed  = errors.New("live feed is closed")
	ErrNotOpen = errors.New("live feed is not open")
)

// Conn is the subset of *websocket.Conn the feed needs.
type Conn interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

type Dialer func(ctx context.Context, url string) (Conn, error)

func DefaultDialer(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Feed walks Connecting -> Open -> Closed exactly once. A dropped connection
// is not re-established, callers create a new Feed for that.
type Feed struct {
	url         string
	dial        Dialer
	dialTimeout time.Duration

	mu      sync.Mutex
	state   State
	conn    Conn
	pending []string
	logger  *zap.Logger
}

type Options struct {
	Dialer      Dialer
	DialTimeout time.Duration
}

func New(url string, opts Options) *Feed {
	if opts.Dialer == nil {
		opts.Dialer = DefaultDialer
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 15 * time.Second
	}
	return &Feed{
		url:         url,
		dial:        opts.Dialer,
		dialTimeout: opts.DialTimeout,
		state:       StateConnecting,
		logger:      common.GetLoggerWith(common.LoggerNameLiveFeed, zap.String("url", url)),
	}
}

func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Connect dials the stream and, once open, sends the registrations that were
// requested while connecting.
func (f *Feed) Connect(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateConnecting {
		state := f.state
		f.mu.Unlock()
		if state == StateClosed {
			return ErrClosed
		}
		return nil
	}
	f.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(ctx, f.dialTimeout)
	defer cancel()

	conn, err := f.dial(dialCtx, f.url)
	if err != nil {
		f.logger.Error("Connection failed", zap.Error(err))
		f.markClosed()
		return fmt.Errorf("dial %s: %w", f.url, err)
	}

	f.mu.Lock()
	if f.state == StateClosed {
		// closed while dialing
		f.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "")
		return ErrClosed
	}
	f.conn = conn
	f.state = StateOpen
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()

	f.logger.Info("Connection established", zap.Int("pending_registrations", len(pending)))

	for _, deviceID := range pending {
		if err := f.write(ctx, conn, deviceID); err != nil {
			f.logger.Warn("Registration failed", zap.String("device_id", deviceID), zap.Error(err))
		}
	}
	return nil
}

func (f *Feed) write(ctx context.Context, conn Conn, deviceID string) error {
	return conn.Write(ctx, websocket.MessageText, []byte(deviceID))
}

// Register subscribes to a device's measurements by sending its bare id.
// While connecting the id is queued and sent on open.
func (f *Feed) Register(ctx context.Context, deviceID string) error {
	f.mu.Lock()
	switch f.state {
	case StateConnecting:
		f.pending = append(f.pending, deviceID)
		f.mu.Unlock()
		f.logger.Debug("Registration queued", zap.String("device_id", deviceID))
		return nil
	case StateClosed:
		f.mu.Unlock()
		return ErrClosed
	}
	conn := f.conn
	f.mu.Unlock()

	if err := f.write(ctx, conn, deviceID); err != nil {
		return fmt.Errorf("register %s: %w", deviceID, err)
	}
	f.logger.Debug("Registered device", zap.String("device_id", deviceID))
	return nil
}

// Run reads messages until the connection ends or ctx is done, handing
// each payload to handle before reading the next one. The feed is closed
// when Run returns.
func (f *Feed) Run(ctx context.Context, handle func([]byte)) error {
	f.mu.Lock()
	if f.state != StateOpen {
		state := f.state
		f.mu.Unlock()
		if state == StateClosed {
			return ErrClosed
		}
		return ErrNotOpen
	}
	conn := f.conn
	f.mu.Unlock()

	defer f.Close()

	for {
		typ, payload, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				f.logger.Info("Connection closed")
				return nil
			}
			if status := websocket.CloseStatus(err); status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				f.logger.Info("Connection closed", zap.String("status", status.String()))
				return nil
			}
			f.logger.Error("Connection error", zap.Error(err))
			return fmt.Errorf("read %s: %w", f.url, err)
		}
		if typ != websocket.MessageText {
			f.logger.Debug("Ignoring binary message", zap.Int("size", len(payload)))
			continue
		}
		handle(payload)
	}
}

func (f *Feed) markClosed() (Conn, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateClosed {
		return nil, false
	}
	f.state = StateClosed
	conn := f.conn
	f.conn = nil
	f.pending = nil
	return conn, true
}

// Close tears the connection down. Safe to call more than once.
func (f *Feed) Close() error {
	conn, changed := f.markClosed()
	if !changed || conn == nil {
		return nil
	}
	if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		f.logger.Debug("Close handshake incomplete", zap.Error(err))
	}
	return nil
}
