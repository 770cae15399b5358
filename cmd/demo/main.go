package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/atlaserp/backend/internal/business"
	"github.com/atlaserp/backend/internal/config"
	"github.com/atlaserp/backend/internal/core/services"
	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
)

// Dispatches every catalog task through the bounded pool and prints the
// results in submission order.
func main() {
	log, err := logger.New(config.LoggerConfig{Level: "warn"})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	catalog := business.Catalog()
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].ID < catalog[j].ID })

	items := make([]domain.WorkItem, len(catalog))
	for i, d := range catalog {
		items[i] = d.Work
	}

	dispatcher := services.NewDispatchService(services.DispatchServiceConfig{
		Workers: config.DefaultWorkers,
		Logger:  log,
	})

	results, err := dispatcher.Run(context.Background(), items)
	if err != nil {
		panic("batch failed: " + err.Error())
	}

	for i, d := range catalog {
		fmt.Printf("Task %d (%s): %v\n", i, d.ID, results[i])
	}
}
