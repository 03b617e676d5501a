// Package collection implements the list-mutate-refetch cycle shared by every
// entity screen: a per-collection state machine with validation before any
// network call, per-record in-flight guards, and last-known-good retention.
package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// State describes the lifecycle of one collection.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Record is any entity with an opaque backend identifier.
type Record interface {
	RecordID() string
}

// Source abstracts the backend endpoints of one collection. T is the record
// type, F the payload sent on create and full update.
type Source[T Record, F any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, form F) error
	Update(ctx context.Context, id string, form F) error
	Delete(ctx context.Context, id string) error
}

// Controller drives one collection. A failed list keeps the last known-good
// records (empty before the first success). Mutations on the same record are
// serialized by an in-flight marker; a second request is rejected, not
// queued. Mutations on different records may run concurrently.
type Controller[T Record, F any] struct {
	source   Source[T, F]
	validate func(F) error

	mu       sync.Mutex
	state    State
	records  []T
	lastErr  error
	saving   bool
	inFlight map[string]bool
}

// New constructs a controller. validate may be nil for read-mostly
// collections such as orders.
func New[T Record, F any](source Source[T, F], validate func(F) error) *Controller[T, F] {
	return &Controller[T, F]{
		source:   source,
		validate: validate,
		state:    StateIdle,
		inFlight: make(map[string]bool),
	}
}

// Snapshot returns the current state, the last known-good records, and the
// last surfaced error (nil unless state is Error).
func (c *Controller[T, F]) Snapshot() (State, []T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.copyRecords(), c.lastErr
}

// List refetches the whole collection. On failure the previous records are
// retained and the error is both stored and returned.
func (c *Controller[T, F]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	records, err := c.source.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.lastErr = err
		return c.copyRecords(), err
	}
	c.state = StateReady
	c.lastErr = nil
	c.records = records
	return c.copyRecords(), nil
}

// Create validates the payload and, only if it passes, issues the create
// call. The collection is not refetched here; screens refetch on entry.
func (c *Controller[T, F]) Create(ctx context.Context, form F) error {
	if err := c.runValidate(form); err != nil {
		return err
	}

	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return fmt.Errorf("%w: a save is already in progress", httpx.ErrConflict)
	}
	c.saving = true
	c.mu.Unlock()

	err := c.source.Create(ctx, form)

	c.mu.Lock()
	c.saving = false
	c.mu.Unlock()
	return err
}

// Update validates the payload and issues a full-record replacement. Guarded
// per record so edits of different records may overlap.
func (c *Controller[T, F]) Update(ctx context.Context, id string, form F) error {
	if err := c.runValidate(form); err != nil {
		return err
	}
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	return c.source.Update(ctx, id, form)
}

// Delete removes a record and refetches the collection to restore
// consistency. A delete failure leaves the records untouched. A refetch
// failure after a successful delete is retained in the controller state but
// not returned; the delete itself succeeded.
func (c *Controller[T, F]) Delete(ctx context.Context, id string) error {
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	if err := c.source.Delete(ctx, id); err != nil {
		return err
	}
	_, _ = c.List(ctx)
	return nil
}

// Apply issues a partial mutation via send and, on success, patches the
// matching in-memory record without refetching. Used for order status
// updates, where refetching the whole list per change would be wasteful.
func (c *Controller[T, F]) Apply(ctx context.Context, id string, send func(context.Context) error, patch func(T) T) error {
	if err := c.begin(id); err != nil {
		return err
	}
	defer c.end(id)

	if err := send(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, record := range c.records {
		if record.RecordID() == id {
			c.records[i] = patch(record)
		}
	}
	return nil
}

func (c *Controller[T, F]) runValidate(form F) error {
	if c.validate == nil {
		return nil
	}
	return c.validate(form)
}

func (c *Controller[T, F]) begin(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[id] {
		return fmt.Errorf("%w: record %s has a mutation in flight", httpx.ErrConflict, id)
	}
	c.inFlight[id] = true
	return nil
}

func (c *Controller[T, F]) end(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, id)
}

func (c *Controller[T, F]) copyRecords() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}
