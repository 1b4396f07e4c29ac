package inventory

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"stockroom/inventory/business/lookup"
	"stockroom/inventory/business/product"
	"stockroom/inventory/business/sale"
	"stockroom/inventory/store"
	"stockroom/inventory/workflow"
)

var inventoryDB = sqldb.NewDatabase("inventory", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	product  product.Business
	sale     sale.Business
	lookup   lookup.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(inventoryDB)
	repo := store.NewStore(pgxdb)

	saleBusiness := sale.NewSaleBusiness(repo.Sales, repo.Products, repo)
	workflow.SetActivityDependencies(saleBusiness)

	c, err := client.Dial(client.Options{
		HostPort:  client.DefaultHostPort,
		Namespace: client.DefaultNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(c, workflow.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.RecordSale)
	w.RegisterActivity(workflow.ReserveStockActivity)
	w.RegisterActivity(workflow.InsertSaleActivity)
	w.RegisterActivity(workflow.ReleaseStockActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}
	rlog.Info("temporal worker started", "task_queue", workflow.TaskQueue)

	return &Service{
		product:  product.NewProductBusiness(repo.Products, repo.Lookups),
		sale:     saleBusiness,
		lookup:   lookup.NewLookupBusiness(repo.Lookups),
		temporal: c,
		worker:   w,
	}, nil
}

// Shutdown stops the worker, letting running activities finish until force
// is cancelled, then closes the Temporal client.
func (s *Service) Shutdown(force context.Context) {
	rlog.Info("stopping temporal worker", "task_queue", workflow.TaskQueue)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.worker.Stop()
	}()

	select {
	case <-stopped:
		rlog.Info("temporal worker stopped", "task_queue", workflow.TaskQueue)
	case <-force.Done():
		rlog.Warn("forced shutdown before temporal worker stopped", "task_queue", workflow.TaskQueue)
	}
	s.temporal.Close()
}
