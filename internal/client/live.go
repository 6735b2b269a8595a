package client

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/campuspulse/engage-go/internal/domain/poll"
	"github.com/gorilla/websocket"
)

// LiveResults is an open subscription to a poll's live tally. Updates is
// closed when the stream ends; Err reports why. Close always releases the
// connection, so callers can defer it on every exit path.
type LiveResults struct {
	conn    *websocket.Conn
	updates chan poll.Results
	done    chan struct{}

	mu        sync.Mutex
	err       error
	closeOnce sync.Once
}

// WatchPollResults subscribes to tally pushes for one poll. The subscription
// ends when ctx is canceled, Close is called, or the server drops the
// connection.
func (c *Client) WatchPollResults(ctx context.Context, pollID string) (*LiveResults, error) {
	u := *c.baseURL
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws/polls/" + pollID

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	dialer := websocket.Dialer{HandshakeTimeout: c.timeout}
	conn, resp, err := dialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			return nil, decodeAPIError(resp)
		}
		return nil, err
	}

	sub := &LiveResults{
		conn:    conn,
		updates: make(chan poll.Results, 8),
		done:    make(chan struct{}),
	}

	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()
	go sub.readLoop()

	return sub, nil
}

func (s *LiveResults) readLoop() {
	defer close(s.updates)
	for {
		var results poll.Results
		if err := s.conn.ReadJSON(&results); err != nil {
			s.mu.Lock()
			// Errors after a caller-initiated Close are part of the shutdown,
			// not a stream failure.
			if s.err == nil && !s.isClosed() && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				s.err = err
			}
			s.mu.Unlock()
			return
		}
		// Closing the conn only fails the next read, so a consumer that
		// stopped draining must not pin this goroutine on the send.
		select {
		case s.updates <- results:
		case <-s.done:
			return
		}
	}
}

func (s *LiveResults) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Updates yields tally snapshots in arrival order.
func (s *LiveResults) Updates() <-chan poll.Results {
	return s.updates
}

// Err reports why the stream ended, nil for a clean close.
func (s *LiveResults) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *LiveResults) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		err = s.conn.Close()
	})
	return err
}
