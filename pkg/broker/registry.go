package broker

import (
	"strconv"
	"sync"

	json "github.com/json-iterator/go"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// Wire is the transport surface the registry needs from a broker
// connection
type Wire interface {
	State() ConnectionState
	SendSubscribe(topic string) error
	SendUnsubscribe(topic string) error
	SetMessageHandler(fn func(topic string, body []byte))
	OnStateChange(fn func(ConnectionState)) func()
}

// Handler receives the raw body of a topic message
type Handler func(body []byte)

type topicEntry struct {
	nextID   int
	handlers map[int]Handler
	live     bool // wire subscribe frame has been sent
}

// Registry multiplexes topic subscriptions over a single broker
// connection. At most one wire subscription exists per topic; every
// registered handler for that topic receives each message. Requests
// made while the connection is still being established are queued and
// flushed once it comes up.
type Registry struct {
	wire Wire

	mu     sync.Mutex
	topics map[string]*topicEntry
}

// NewRegistry creates a registry bound to a broker connection
func NewRegistry(wire Wire) *Registry {
	r := &Registry{
		wire:   wire,
		topics: make(map[string]*topicEntry),
	}
	wire.SetMessageHandler(r.dispatch)
	wire.OnStateChange(r.handleState)
	return r
}

// Subscribe registers a handler for a topic. The first subscriber for
// a topic triggers the wire subscription; later subscribers share it.
// Returns an unsubscribe function, or an error when the connection is
// down.
func (r *Registry) Subscribe(topic string, fn Handler) (func(), error) {
	if r.wire.State() == StateDisconnected {
		return nil, errors.NotConnectedError()
	}

	r.mu.Lock()
	entry, ok := r.topics[topic]
	if !ok {
		entry = &topicEntry{handlers: make(map[int]Handler)}
		r.topics[topic] = entry
	}
	id := entry.nextID
	entry.nextID++
	entry.handlers[id] = fn

	needsWire := !entry.live && r.wire.State() == StateConnected
	if needsWire {
		entry.live = true
	}
	r.mu.Unlock()

	if needsWire {
		if err := r.wire.SendSubscribe(topic); err != nil {
			logger.Error("Failed to subscribe", "topic", topic, "error", err)
		}
	}

	return func() { r.remove(topic, id) }, nil
}

// SubscribeLikes delivers absolute like counts for a post
func (r *Registry) SubscribeLikes(postID int64, fn func(count int)) (func(), error) {
	return r.subscribeCounter(LikesTopic(postID), fn)
}

// SubscribeCommentCount delivers absolute comment counts for a post
func (r *Registry) SubscribeCommentCount(postID int64, fn func(count int)) (func(), error) {
	return r.subscribeCounter(CommentCountTopic(postID), fn)
}

// SubscribeComments delivers new comments for a post
func (r *Registry) SubscribeComments(postID int64, fn func(comment api.Comment)) (func(), error) {
	topic := CommentsTopic(postID)
	return r.Subscribe(topic, func(body []byte) {
		var comment api.Comment
		if err := json.Unmarshal(body, &comment); err != nil {
			logger.Warn("Dropping undecodable comment", "topic", topic, "error", errors.DecodeError(topic, err))
			return
		}
		fn(comment)
	})
}

// UnsubscribeEntity tears down every topic for a post. Topics without
// an active subscription are skipped.
func (r *Registry) UnsubscribeEntity(postID int64) {
	for _, topic := range EntityTopics(postID) {
		r.mu.Lock()
		entry, ok := r.topics[topic]
		var live bool
		if ok {
			live = entry.live
			delete(r.topics, topic)
		}
		r.mu.Unlock()

		if live {
			if err := r.wire.SendUnsubscribe(topic); err != nil {
				logger.Debug("Failed to unsubscribe", "topic", topic, "error", err)
			}
		}
	}
}

// TopicCount returns the number of registered topics
func (r *Registry) TopicCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.topics)
}

func (r *Registry) subscribeCounter(topic string, fn func(count int)) (func(), error) {
	return r.Subscribe(topic, func(body []byte) {
		count, err := decodeCounter(body)
		if err != nil {
			logger.Warn("Dropping undecodable counter", "topic", topic, "error", errors.DecodeError(topic, err))
			return
		}
		fn(count)
	})
}

// decodeCounter accepts a bare integer body
func decodeCounter(body []byte) (int, error) {
	return strconv.Atoi(string(body))
}

func (r *Registry) remove(topic string, id int) {
	r.mu.Lock()
	entry, ok := r.topics[topic]
	if ok {
		delete(entry.handlers, id)
	}
	var teardown bool
	if ok && len(entry.handlers) == 0 {
		teardown = entry.live
		delete(r.topics, topic)
	}
	r.mu.Unlock()

	if teardown {
		if err := r.wire.SendUnsubscribe(topic); err != nil {
			logger.Debug("Failed to unsubscribe", "topic", topic, "error", err)
		}
	}
}

func (r *Registry) dispatch(topic string, body []byte) {
	r.mu.Lock()
	entry, ok := r.topics[topic]
	var handlers []Handler
	if ok {
		handlers = make([]Handler, 0, len(entry.handlers))
		for _, fn := range entry.handlers {
			handlers = append(handlers, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range handlers {
		fn(body)
	}
}

// handleState flushes queued subscriptions when the connection comes
// up and clears the topic map when it goes down
func (r *Registry) handleState(state ConnectionState) {
	switch state {
	case StateConnected:
		r.mu.Lock()
		var flush []string
		for topic, entry := range r.topics {
			if !entry.live {
				entry.live = true
				flush = append(flush, topic)
			}
		}
		r.mu.Unlock()

		for _, topic := range flush {
			if err := r.wire.SendSubscribe(topic); err != nil {
				logger.Error("Failed to subscribe", "topic", topic, "error", err)
			}
		}
	case StateDisconnected:
		r.mu.Lock()
		r.topics = make(map[string]*topicEntry)
		r.mu.Unlock()
	}
}
