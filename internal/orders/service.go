package orders

import (
	"context"
	"log/slog"

	"github.com/stockpilot/stockpilot/internal/collection"
	"github.com/stockpilot/stockpilot/internal/platform/httpx"
	"github.com/stockpilot/stockpilot/internal/products"
	"github.com/stockpilot/stockpilot/internal/upstream"
)

// StatusForm is the partial payload for a status transition.
type StatusForm struct {
	Status Status `json:"status"`
}

// Service exposes the order screens: list, detail, status transition, and
// deletion. Orders are never created from the admin surface.
type Service struct {
	logger   *slog.Logger
	resource *upstream.Resource[Order, StatusForm]
	ctrl     *collection.Controller[Order, StatusForm]
	products *products.Service
}

func NewService(logger *slog.Logger, client *upstream.Client, productService *products.Service) *Service {
	resource := upstream.NewResource[Order, StatusForm](client, "/orders")
	return &Service{
		logger:   logger,
		resource: resource,
		ctrl:     collection.New[Order, StatusForm](resource, nil),
		products: productService,
	}
}

// List refetches the order collection and resolves it for display. The list
// screen resolves without a product index; only the detail screen pays for
// the extra product listing.
func (s *Service) List(ctx context.Context) ([]OrderView, error) {
	records, err := s.ctrl.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, len(records))
	for i, record := range records {
		views[i] = NewOrderView(record, nil)
	}
	return views, nil
}

// Get fetches one order and a full product listing, then resolves items
// against the resulting index.
func (s *Service) Get(ctx context.Context, id string) (OrderView, error) {
	record, err := s.resource.Get(ctx, id)
	if err != nil {
		return OrderView{}, err
	}
	listing, err := s.products.List(ctx)
	if err != nil {
		return OrderView{}, err
	}
	return NewOrderView(record, BuildIndex(listing)), nil
}

// UpdateStatus sends a partial status update and applies it optimistically
// to the in-memory list on success. No refetch is performed.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return &httpx.ValidationError{Field: "status", Message: "Invalid status"}
	}
	return s.ctrl.Apply(ctx, id,
		func(ctx context.Context) error {
			return s.resource.Patch(ctx, id, StatusForm{Status: status})
		},
		func(o Order) Order {
			o.Status = status
			return o
		},
	)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.ctrl.Delete(ctx, id)
}

// Snapshot exposes the controller state for read-only consumers.
func (s *Service) Snapshot() (collection.State, []Order, error) {
	return s.ctrl.Snapshot()
}
