package cmd

import (
	"log/slog"
	"strings"
	"time"

	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/memstore"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

// StorageMemory and StoragePostgres are the accepted STORAGE config values.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// CompositionRoot wires adapters into use case handlers. The repository and
// publisher are chosen once from config; every handler created afterwards
// shares them.
type CompositionRoot struct {
	repo      ports.OrderRepository
	notifier  commands.OrderEventNotifier
	publisher *kafka.OrderEventPublisher
	logger    *slog.Logger
}

// NewCompositionRoot selects the storage and event publisher from config.
// gormDB may be nil when the in-memory storage is configured.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	var repo ports.OrderRepository
	if configs.Storage == StoragePostgres {
		repo = orderrepo.NewGormOrderRepository(gormDB)
	} else {
		repo = memstore.NewOrderRepository()
	}

	root := &CompositionRoot{
		repo:   repo,
		logger: logger,
	}

	var publisher ports.OrderEventPublisher = kafka.NewNoOpOrderEventPublisher()
	if configs.KafkaHost != "" {
		kafkaPublisher, err := kafka.NewOrderEventPublisher(
			strings.Split(configs.KafkaHost, ","),
			configs.KafkaOrderChangedTopic,
			logger,
		)
		if err != nil {
			return nil, err
		}

		root.publisher = kafkaPublisher
		publisher = kafkaPublisher
	}

	root.notifier = commands.NewOrderEventNotifier(publisher, logger)
	return root, nil
}

// Close releases resources held by the adapters.
func (c *CompositionRoot) Close() {
	if c.publisher != nil {
		c.publisher.Close()
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateJobManager(staleOrderTTL time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.repo, c.CreateCancelOrderCommandHandler(), staleOrderTTL, c.logger)
}
