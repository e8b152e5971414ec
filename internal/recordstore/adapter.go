package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/amarupazila/app-local-info/internal/errreport"
	"github.com/amarupazila/app-local-info/internal/models"
)

// DefaultPollInterval is how often a subscription refreshes its snapshot
// when the caller does not override it.
const DefaultPollInterval = 30 * time.Second

// State is one subscription notification: the current record mirror plus the
// loading flag. Loading is true only until the first notification (success or
// empty) arrives. The adapter owns this state; consumers get copies.
type State struct {
	Records []models.Record
	Loading bool
}

// Adapter mirrors remote collections and fans notifications out to
// subscribers through an in-process pub/sub. Writes go through unchanged
// (exactly one remote attempt, no optimistic local mutation): the mirror
// only moves on the next subscription notification.
type Adapter struct {
	store        Store
	reporter     errreport.Reporter
	logger       zerolog.Logger
	pubsub       *gochannel.GoChannel
	pollInterval time.Duration
}

// Option adjusts adapter construction.
type Option func(*Adapter)

// WithPollInterval overrides the snapshot refresh interval.
func WithPollInterval(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.pollInterval = d
		}
	}
}

// NewAdapter builds an adapter over the given store. Subscription failures
// are surfaced through reporter, never returned to the feed path.
func NewAdapter(store Store, reporter errreport.Reporter, logger zerolog.Logger, opts ...Option) *Adapter {
	if reporter == nil {
		reporter = errreport.Nop{}
	}
	a := &Adapter{
		store:        store,
		reporter:     reporter,
		logger:       logger,
		pubsub:       gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{}),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subscribe starts mirroring a collection. Until the first notification the
// state is {[], loading=true}. An empty remote snapshot is replaced with the
// caller-supplied seed records so a cold backend never yields an empty feed.
// A snapshot error freezes the subscription at its last known state, reports
// the error exactly once and stops polling; retrying is the caller's call
// (via Refetch).
//
// The returned Subscription must be released with Unsubscribe.
func (a *Adapter) Subscribe(ctx context.Context, collection string, seed []models.Record) (*Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	// Topic is unique per subscription so independent consumers (and tests)
	// never interfere.
	topic := collection + "." + watermill.NewShortUUID()
	messages, err := a.pubsub.Subscribe(subCtx, topic)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribing to %s: %w", collection, err)
	}

	sub := &Subscription{
		adapter:    a,
		collection: collection,
		seed:       seed,
		topic:      topic,
		cancel:     cancel,
		updates:    make(chan State, 1),
		state:      State{Records: []models.Record{}, Loading: true},
	}

	go sub.forward(messages)
	go sub.poll(subCtx)

	return sub, nil
}

// Create performs exactly one remote write attempt. Failure is returned to
// the caller; the adapter does not retry.
func (a *Adapter) Create(ctx context.Context, collection string, rec models.Record) (string, error) {
	return a.store.Add(ctx, collection, rec)
}

// Update applies one partial update attempt.
func (a *Adapter) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	return a.store.Update(ctx, collection, id, fields)
}

// Delete performs one delete attempt.
func (a *Adapter) Delete(ctx context.Context, collection, id string) error {
	return a.store.Delete(ctx, collection, id)
}

// Get retrieves a single record (get-once).
func (a *Adapter) Get(ctx context.Context, collection, id string) (models.Record, error) {
	return a.store.Get(ctx, collection, id)
}

// Close tears down the internal pub/sub. Outstanding subscriptions stop
// receiving updates.
func (a *Adapter) Close() error {
	return a.pubsub.Close()
}

// Subscription is the ongoing stream of states for one collection, plus its
// explicit cancellation handle.
type Subscription struct {
	adapter    *Adapter
	collection string
	seed       []models.Record
	topic      string
	cancel     context.CancelFunc

	updates chan State

	mu    sync.RWMutex
	state State
}

// Updates delivers notifications in the order they were produced. The
// channel closes after Unsubscribe.
func (s *Subscription) Updates() <-chan State {
	return s.updates
}

// State returns the current snapshot read-only (a copy of the slice header;
// records themselves are shared and must not be mutated).
func (s *Subscription) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]models.Record, len(s.state.Records))
	copy(records, s.state.Records)
	return State{Records: records, Loading: s.state.Loading}
}

// Unsubscribe stops polling and closes the update stream. Callers must
// invoke it on teardown.
func (s *Subscription) Unsubscribe() {
	s.cancel()
}

// Refetch replaces the current snapshot with a one-shot fetch. This is the
// caller-driven retry path after a frozen subscription. The seed fallback
// applies here too.
func (s *Subscription) Refetch(ctx context.Context) error {
	records, err := s.adapter.store.Snapshot(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("refetching %s: %w", s.collection, err)
	}
	if len(records) == 0 {
		records = s.seed
	}
	s.publish(State{Records: records, Loading: false})
	return nil
}

// poll is the subscription's only state writer. One snapshot immediately,
// then one per interval, stopping on the first error or on teardown.
func (s *Subscription) poll(ctx context.Context) {
	for {
		records, err := s.adapter.store.Snapshot(ctx, s.collection)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.freeze(err)
			return
		}

		if len(records) == 0 {
			records = s.seed
		}
		s.publish(State{Records: records, Loading: false})

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.adapter.pollInterval):
		}
	}
}

// freeze keeps the last known records, drops the loading flag and reports
// the error exactly once. No automatic retry.
func (s *Subscription) freeze(err error) {
	s.mu.RLock()
	frozen := State{Records: s.state.Records, Loading: false}
	s.mu.RUnlock()

	s.adapter.reporter.Report("recordstore.subscribe:"+s.collection, err)
	s.publish(frozen)
}

func (s *Subscription) publish(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	payload, err := encodeState(state)
	if err != nil {
		s.adapter.logger.Error().Err(err).Str("collection", s.collection).Msg("encoding subscription state")
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.adapter.pubsub.Publish(s.topic, msg); err != nil {
		s.adapter.logger.Error().Err(err).Str("collection", s.collection).Msg("publishing subscription state")
	}
}

// forward decodes pub/sub messages into typed states, preserving order.
func (s *Subscription) forward(messages <-chan *message.Message) {
	defer close(s.updates)
	for msg := range messages {
		state, err := decodeState(msg.Payload)
		msg.Ack()
		if err != nil {
			s.adapter.logger.Error().Err(err).Str("collection", s.collection).Msg("decoding subscription state")
			continue
		}
		s.updates <- state
	}
}

// wireState is the pub/sub payload form: records travel as raw documents so
// the tagged-union decode happens exactly once per consumer.
type wireState struct {
	Records []json.RawMessage `json:"records"`
	Loading bool              `json:"loading"`
}

func encodeState(state State) ([]byte, error) {
	wire := wireState{
		Records: make([]json.RawMessage, 0, len(state.Records)),
		Loading: state.Loading,
	}
	for _, rec := range state.Records {
		data, err := models.EncodeRecord(rec)
		if err != nil {
			return nil, err
		}
		wire.Records = append(wire.Records, data)
	}
	return json.Marshal(wire)
}

func decodeState(payload []byte) (State, error) {
	var wire wireState
	if err := json.Unmarshal(payload, &wire); err != nil {
		return State{}, err
	}

	state := State{Records: make([]models.Record, 0, len(wire.Records)), Loading: wire.Loading}
	for _, raw := range wire.Records {
		rec, err := models.DecodeRecord(raw)
		if err != nil {
			return State{}, err
		}
		state.Records = append(state.Records, rec)
	}
	return state, nil
}
