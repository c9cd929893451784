package live

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"

	"liyu1981.xyz/co2-monitor/pkg/common"
	_ "liyu1981.xyz/co2-monitor/pkg/testing"
)

func newStreamServer(t *testing.T, onConn func(ctx context.Context, c *websocket.Conn)) string {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exited")
		onConn(r.Context(), c)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestFeed_QueuedRegistrationsSentOnOpen(t *testing.T) {
	common.SetTestLoggerNop()

	received := make(chan string, 8)
	url := newStreamServer(t, func(ctx context.Context, c *websocket.Conn) {
		for {
			_, msg, err := c.Read(ctx)
			if err != nil {
				return
			}
			received <- string(msg)
		}
	})

	feed := New(url, Options{})
	defer feed.Close()

	ctx := context.Background()
	require.NoError(t, feed.Register(ctx, "d1"))
	require.NoError(t, feed.Register(ctx, "d2"))
	assert.Equal(t, StateConnecting, feed.State())

	require.NoError(t, feed.Connect(ctx))
	assert.Equal(t, StateOpen, feed.State())

	require.NoError(t, feed.Register(ctx, "d3"))

	var got []string
	for range 3 {
		select {
		case id := <-received:
			got = append(got, id)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for registrations, got %v", got)
		}
	}
	assert.Equal(t, []string{"d1", "d2", "d3"}, got)
}

func TestFeed_RunDeliversInOrderThenCloses(t *testing.T) {
	common.SetTestLoggerNop()

	url := newStreamServer(t, func(ctx context.Context, c *websocket.Conn) {
		for _, msg := range []string{`{"id":"d1","co2EquivalentValue":1}`, `{"id":"d1","co2EquivalentValue":2}`, `{"id":"d2","co2EquivalentValue":3}`} {
			if err := c.Write(ctx, websocket.MessageText, []byte(msg)); err != nil {
				return
			}
		}
		_ = c.Write(ctx, websocket.MessageBinary, []byte{0x1})
		_ = c.Close(websocket.StatusNormalClosure, "done")
	})

	feed := New(url, Options{})
	require.NoError(t, feed.Connect(context.Background()))

	var got []string
	err := feed.Run(context.Background(), func(payload []byte) {
		got = append(got, string(payload))
	})
	require.NoError(t, err)

	assert.Len(t, got, 3)
	assert.Contains(t, got[0], `"co2EquivalentValue":1`)
	assert.Contains(t, got[2], `"d2"`)
	assert.Equal(t, StateClosed, feed.State())

	assert.ErrorIs(t, feed.Register(context.Background(), "d9"), ErrClosed)
	assert.ErrorIs(t, feed.Connect(context.Background()), ErrClosed)
	assert.NoError(t, feed.Close())
}

func TestFeed_RunStopsOnContextCancel(t *testing.T) {
	common.SetTestLoggerNop()

	url := newStreamServer(t, func(ctx context.Context, c *websocket.Conn) {
		for {
			if _, _, err := c.Read(ctx); err != nil {
				return
			}
		}
	})

	feed := New(url, Options{})
	require.NoError(t, feed.Connect(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- feed.Run(ctx, func([]byte) {})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, StateClosed, feed.State())
}

func TestFeed_ConnectFailure(t *testing.T) {
	common.SetTestLoggerNop()

	feed := New("ws://127.0.0.1:1/stream", Options{DialTimeout: 500 * time.Millisecond})
	require.NoError(t, feed.Register(context.Background(), "d1"))

	err := feed.Connect(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateClosed, feed.State())
	assert.ErrorIs(t, feed.Register(context.Background(), "d1"), ErrClosed)
}

func TestFeed_RunBeforeConnect(t *testing.T) {
	common.SetTestLoggerNop()

	feed := New("ws://unused", Options{})
	assert.ErrorIs(t, feed.Run(context.Background(), func([]byte) {}), ErrNotOpen)
}

type fakeConn struct {
	mu      sync.Mutex
	written []string
	reads   chan []byte
	closed  bool
}

func (fc *fakeConn) Read(ctx context.Context) (websocket.MessageType, []byte, error) {
	select {
	case msg, ok := <-fc.reads:
		if !ok {
			return 0, nil, errors.New("connection reset")
		}
		return websocket.MessageText, msg, nil
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}
}

func (fc *fakeConn) Write(_ context.Context, _ websocket.MessageType, p []byte) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.written = append(fc.written, string(p))
	return nil
}

func (fc *fakeConn) Close(websocket.StatusCode, string) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.closed = true
	return nil
}

func TestFeed_RunErrorClosesFeed(t *testing.T) {
	common.SetTestLoggerNop()

	conn := &fakeConn{reads: make(chan []byte, 1)}
	feed := New("ws://fake", Options{Dialer: func(context.Context, string) (Conn, error) { return conn, nil }})
	require.NoError(t, feed.Connect(context.Background()))

	conn.reads <- []byte(`{"id":"d1","co2EquivalentValue":900}`)
	close(conn.reads)

	var got int
	err := feed.Run(context.Background(), func([]byte) { got++ })
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, 1, got)
	assert.Equal(t, StateClosed, feed.State())
	assert.True(t, conn.closed)
}

func TestFeed_CloseWhileConnecting(t *testing.T) {
	common.SetTestLoggerNop()

	conn := &fakeConn{reads: make(chan []byte)}
	dialing := make(chan struct{})
	release := make(chan struct{})
	feed := New("ws://fake", Options{Dialer: func(context.Context, string) (Conn, error) {
		close(dialing)
		<-release
		return conn, nil
	}})

	done := make(chan error, 1)
	go func() { done <- feed.Connect(context.Background()) }()

	<-dialing
	require.NoError(t, feed.Close())
	close(release)

	assert.ErrorIs(t, <-done, ErrClosed)
	conn.mu.Lock()
	defer conn.mu.Unlock()
	assert.True(t, conn.closed)
	assert.Equal(t, StateClosed, feed.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "closed", StateClosed.String())
}
