package products

import (
	"context"
	"log/slog"

	"github.com/stockpilot/stockpilot/internal/collection"
	"github.com/stockpilot/stockpilot/internal/upstream"
)

// Service exposes product CRUD backed by the upstream /products collection.
type Service struct {
	logger   *slog.Logger
	resource *upstream.Resource[Product, ProductForm]
	ctrl     *collection.Controller[Product, ProductForm]
}

func NewService(logger *slog.Logger, client *upstream.Client) *Service {
	resource := upstream.NewResource[Product, ProductForm](client, "/products")
	return &Service{
		logger:   logger,
		resource: resource,
		ctrl:     collection.New[Product, ProductForm](resource, validateForm),
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.ctrl.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.resource.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, form ProductForm) error {
	return s.ctrl.Create(ctx, form.normalized())
}

func (s *Service) Update(ctx context.Context, id string, form ProductForm) error {
	return s.ctrl.Update(ctx, id, form.normalized())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.ctrl.Delete(ctx, id)
}

// Snapshot exposes the controller state for read-only consumers.
func (s *Service) Snapshot() (collection.State, []Product, error) {
	return s.ctrl.Snapshot()
}
