package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// ConnectionState represents the state of the broker connection
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
)

// String returns a human-readable state name
func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Frame is the broker wire format. Outbound frames carry subscribe and
// unsubscribe requests; inbound frames carry topic messages.
type Frame struct {
	Type  string          `json:"type"`
	Topic string          `json:"topic,omitempty"`
	Body  json.RawMessage `json:"body,omitempty"`
}

const (
	frameSubscribe   = "subscribe"
	frameUnsubscribe = "unsubscribe"
	frameMessage     = "message"
	framePing        = "ping"
	framePong        = "pong"
)

// Config holds broker connection configuration
type Config struct {
	Host                string
	Port                int
	Path                string
	UseTLS              bool
	ConnectTimeoutMs    int
	HeartbeatIntervalMs int
}

// DefaultConfig returns a development configuration
func DefaultConfig() Config {
	return Config{
		Host:                "localhost",
		Port:                8080,
		Path:                "/ws",
		UseTLS:              false,
		ConnectTimeoutMs:    15000,
		HeartbeatIntervalMs: 30000,
	}
}

// ProductionConfig returns a production configuration
func ProductionConfig(host string) Config {
	cfg := DefaultConfig()
	cfg.Host = host
	cfg.Port = 443
	cfg.UseTLS = true
	return cfg
}

// ConnectionStats holds connection statistics
type ConnectionStats struct {
	MessagesReceived int64
	MessagesSent     int64
	LastError        string
	ConnectedAt      time.Time
	DisconnectedAt   time.Time
}

// Conn manages a single connection to the realtime broker. It is
// explicitly constructed and handed to whatever needs it; there is no
// package-level instance. Connection loss is reported through the state
// callbacks and it is up to the owner to reconnect.
type Conn struct {
	config Config

	mu    sync.RWMutex
	conn  *websocket.Conn
	token string

	state atomic.Value // ConnectionState

	handlerMu sync.RWMutex
	onMessage func(topic string, body []byte)

	observersMu sync.RWMutex
	observers   map[int]func(ConnectionState)
	nextObs     int

	ctx    context.Context
	cancel context.CancelFunc

	statsLock sync.RWMutex
	stats     ConnectionStats
}

// NewConn creates a broker connection in the disconnected state
func NewConn(config Config) *Conn {
	c := &Conn{
		config:    config,
		observers: make(map[int]func(ConnectionState)),
	}
	c.state.Store(StateDisconnected)
	return c
}

// State returns the current connection state
func (c *Conn) State() ConnectionState {
	return c.state.Load().(ConnectionState)
}

// IsConnected returns true if the connection is established
func (c *Conn) IsConnected() bool {
	return c.State() == StateConnected
}

// OnStateChange registers a state observer and returns a function that
// removes it
func (c *Conn) OnStateChange(fn func(ConnectionState)) func() {
	c.observersMu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.observersMu.Unlock()

	return func() {
		c.observersMu.Lock()
		delete(c.observers, id)
		c.observersMu.Unlock()
	}
}

// SetMessageHandler installs the handler for inbound topic messages.
// The registry owns this; only one handler is active at a time.
func (c *Conn) SetMessageHandler(fn func(topic string, body []byte)) {
	c.handlerMu.Lock()
	c.onMessage = fn
	c.handlerMu.Unlock()
}

// Connect establishes the broker connection, authenticating the
// handshake with the session token. Failure leaves the connection
// disconnected; there is no automatic retry.
func (c *Conn) Connect(token string) error {
	if c.State() != StateDisconnected {
		return fmt.Errorf("already %s", c.State())
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	c.setState(StateConnecting)

	conn, err := c.dial()
	if err != nil {
		c.recordError(err.Error())
		c.setState(StateDisconnected)
		logger.Error("Broker connect failed", "host", c.config.Host, "error", err)
		return errors.CategorizeError(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.conn = conn
	c.ctx = ctx
	c.cancel = cancel
	c.mu.Unlock()

	c.recordConnected()
	c.setState(StateConnected)

	go c.readLoop(ctx, conn)
	go c.heartbeatLoop(ctx)

	logger.Debug("Broker connected", "host", c.config.Host, "port", c.config.Port)
	return nil
}

// Disconnect closes the broker connection
func (c *Conn) Disconnect() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	if c.State() != StateDisconnected {
		c.recordDisconnected()
		c.setState(StateDisconnected)
		logger.Debug("Broker disconnected")
	}
	return nil
}

// SendSubscribe sends a wire-level subscribe frame for a topic
func (c *Conn) SendSubscribe(topic string) error {
	return c.writeFrame(Frame{Type: frameSubscribe, Topic: topic})
}

// SendUnsubscribe sends a wire-level unsubscribe frame for a topic
func (c *Conn) SendUnsubscribe(topic string) error {
	return c.writeFrame(Frame{Type: frameUnsubscribe, Topic: topic})
}

// GetStats returns connection statistics
func (c *Conn) GetStats() ConnectionStats {
	c.statsLock.RLock()
	defer c.statsLock.RUnlock()
	return c.stats
}

func (c *Conn) dial() (*websocket.Conn, error) {
	scheme := "ws"
	if c.config.UseTLS {
		scheme = "wss"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
		Path:   c.config.Path,
	}

	header := http.Header{}
	c.mu.RLock()
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	timeout := time.Duration(c.config.ConnectTimeoutMs) * time.Millisecond
	dialCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, u.String(), header)
	return conn, err
}

func (c *Conn) writeFrame(frame Frame) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil || c.State() != StateConnected {
		return errors.NotConnectedError()
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	c.mu.Unlock()
	if err != nil {
		c.recordError(err.Error())
		return errors.CategorizeError(err)
	}

	c.recordMessageSent()
	return nil
}

func (c *Conn) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer c.handleReadExit(conn)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			select {
			case <-ctx.Done():
			default:
				c.recordError(err.Error())
				logger.Error("Broker read error", "error", err)
			}
			return
		}

		c.recordMessageReceived()

		switch frame.Type {
		case frameMessage:
			c.handlerMu.RLock()
			handler := c.onMessage
			c.handlerMu.RUnlock()
			if handler != nil {
				handler(frame.Topic, frame.Body)
			}
		case framePong:
			// heartbeat acknowledged
		default:
			logger.Debug("Ignoring broker frame", "type", frame.Type)
		}
	}
}

// handleReadExit tears the connection down when the read loop stops,
// unless Disconnect already did
func (c *Conn) handleReadExit(conn *websocket.Conn) {
	c.mu.Lock()
	stale := c.conn != conn
	if !stale {
		if c.cancel != nil {
			c.cancel()
			c.cancel = nil
		}
		c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	if !stale {
		c.recordDisconnected()
		c.setState(StateDisconnected)
	}
}

func (c *Conn) heartbeatLoop(ctx context.Context) {
	interval := time.Duration(c.config.HeartbeatIntervalMs) * time.Millisecond
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.writeFrame(Frame{Type: framePing}); err != nil {
				logger.Debug("Failed to send heartbeat", "error", err)
				return
			}
		}
	}
}

func (c *Conn) setState(state ConnectionState) {
	c.state.Store(state)

	c.observersMu.RLock()
	observers := make([]func(ConnectionState), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.observersMu.RUnlock()

	for _, fn := range observers {
		fn(state)
	}
}

func (c *Conn) recordMessageReceived() {
	c.statsLock.Lock()
	c.stats.MessagesReceived++
	c.statsLock.Unlock()
}

func (c *Conn) recordMessageSent() {
	c.statsLock.Lock()
	c.stats.MessagesSent++
	c.statsLock.Unlock()
}

func (c *Conn) recordError(errMsg string) {
	c.statsLock.Lock()
	c.stats.LastError = errMsg
	c.statsLock.Unlock()
}

func (c *Conn) recordConnected() {
	c.statsLock.Lock()
	c.stats.ConnectedAt = time.Now()
	c.statsLock.Unlock()
}

func (c *Conn) recordDisconnected() {
	c.statsLock.Lock()
	c.stats.DisconnectedAt = time.Now()
	c.statsLock.Unlock()
}
