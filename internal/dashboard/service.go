// Package dashboard aggregates headline counts across all three collections.
package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/stockpilot/stockpilot/internal/orders"
	"github.com/stockpilot/stockpilot/internal/products"
	"github.com/stockpilot/stockpilot/internal/suppliers"
)

// lowStockThreshold marks products running low but not yet out of stock.
const lowStockThreshold = 5

// Stats are the headline numbers shown on the dashboard screen.
type Stats struct {
	TotalProducts   int `json:"totalProducts"`
	LowStock        int `json:"lowStock"`
	OutOfStock      int `json:"outOfStock"`
	TotalSuppliers  int `json:"totalSuppliers"`
	TotalOrders     int `json:"totalOrders"`
	PendingOrders   int `json:"pendingOrders"`
	CompletedOrders int `json:"completedOrders"`
}

type Service struct {
	logger    *slog.Logger
	products  *products.Service
	suppliers *suppliers.Service
	orders    *orders.Service
}

func NewService(logger *slog.Logger, productService *products.Service, supplierService *suppliers.Service, orderService *orders.Service) *Service {
	return &Service{
		logger:    logger,
		products:  productService,
		suppliers: supplierService,
		orders:    orderService,
	}
}

// Stats fetches all three collections concurrently and derives the counts.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var (
		productList  []products.Product
		supplierList []suppliers.Supplier
		orderList    []orders.OrderView
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productList, err = s.products.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		supplierList, err = s.suppliers.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orderList, err = s.orders.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalProducts:  len(productList),
		TotalSuppliers: len(supplierList),
		TotalOrders:    len(orderList),
	}
	for _, p := range productList {
		switch {
		case p.Stock == 0:
			stats.OutOfStock++
		case p.Stock < lowStockThreshold:
			stats.LowStock++
		}
	}
	for _, o := range orderList {
		switch o.Status {
		case orders.StatusPending:
			stats.PendingOrders++
		case orders.StatusCompleted:
			stats.CompletedOrders++
		}
	}
	return stats, nil
}
