package suppliers

import (
	"context"
	"log/slog"

	"github.com/stockpilot/stockpilot/internal/collection"
	"github.com/stockpilot/stockpilot/internal/upstream"
)

// Service exposes supplier CRUD backed by the upstream /suppliers collection.
type Service struct {
	logger   *slog.Logger
	resource *upstream.Resource[Supplier, SupplierForm]
	ctrl     *collection.Controller[Supplier, SupplierForm]
}

func NewService(logger *slog.Logger, client *upstream.Client) *Service {
	resource := upstream.NewResource[Supplier, SupplierForm](client, "/suppliers")
	return &Service{
		logger:   logger,
		resource: resource,
		ctrl:     collection.New[Supplier, SupplierForm](resource, validateForm),
	}
}

func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.ctrl.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	return s.resource.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, form SupplierForm) error {
	return s.ctrl.Create(ctx, form.normalized())
}

func (s *Service) Update(ctx context.Context, id string, form SupplierForm) error {
	return s.ctrl.Update(ctx, id, form.normalized())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.ctrl.Delete(ctx, id)
}

// Snapshot exposes the controller state for read-only consumers.
func (s *Service) Snapshot() (collection.State, []Supplier, error) {
	return s.ctrl.Snapshot()
}
