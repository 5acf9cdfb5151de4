package orderrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// Ping through database/sql before handing the DSN to GORM, so a
	// container that is up but not yet accepting queries fails fast here.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.PingContext(ctx))
	suite.Require().NoError(sqlDB.Close())

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() order.Order[order.Created] {
	li, err := order.NewLineItem(kernel.NewUUID(), 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), []order.LineItem{li}, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_CreatedOrder_Persists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Save(ctx, testOrder))
	suite.assertOrderCount(1)

	v, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	retrieved, ok := v.(order.Order[order.Created])
	suite.Require().True(ok)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Len(retrieved.LineItems(), 1)
	suite.Equal(testOrder.LineItems()[0].Quantity(), retrieved.LineItems()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NotConstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Save(ctx, order.Order[order.Created]{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_Upsert_ReplacesState() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	confirmed := order.Confirm(testOrder, time.Now().UTC())
	suite.Require().NoError(suite.repository.Save(ctx, confirmed))
	suite.assertOrderCount(1)

	v, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StateConfirmed, order.VariantStateName(v))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_FullLifecycle_ShippedFieldsSurvive() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	confirmedAt := time.Now().UTC().Truncate(time.Microsecond)
	shippedAt := confirmedAt.Add(time.Hour)

	shipped := order.Ship(order.Confirm(testOrder, confirmedAt), shippedAt, "TRK-100")
	suite.Require().NoError(suite.repository.Save(ctx, shipped))

	v, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	retrieved, ok := v.(order.Order[order.Shipped])
	suite.Require().True(ok)
	suite.True(retrieved.State().ConfirmedAt.Equal(confirmedAt))
	suite.True(retrieved.State().ShippedAt.Equal(shippedAt))
	suite.Equal("TRK-100", retrieved.State().TrackingID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_CancelledEmptyOrder_Persists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	emptied := order.RemoveLineItem(testOrder, testOrder.LineItems()[0].ID(), time.Now().UTC())
	cancelled := order.Cancel(emptied, time.Now().UTC())

	suite.Require().NoError(suite.repository.Save(ctx, cancelled))

	v, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	retrieved, ok := v.(order.Order[order.Cancelled])
	suite.Require().True(ok)
	suite.Empty(retrieved.LineItems())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	v, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(v)
	suite.Require().Error(err)

	var notFoundErr *errs.OrderNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllCreated_MixedStates_ReturnsOnlyCreated() {
	ctx := context.Background()

	first := suite.createTestOrder()
	second := suite.createTestOrder()
	confirmed := order.Confirm(suite.createTestOrder(), time.Now().UTC())
	cancelled := order.Cancel(suite.createTestOrder(), time.Now().UTC())

	suite.Require().NoError(suite.repository.Save(ctx, first))
	suite.Require().NoError(suite.repository.Save(ctx, second))
	suite.Require().NoError(suite.repository.Save(ctx, confirmed))
	suite.Require().NoError(suite.repository.Save(ctx, cancelled))

	created, err := suite.repository.GetAllCreated(ctx)
	suite.Require().NoError(err)
	suite.Len(created, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllCreated_NoCreatedOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	confirmed := order.Confirm(suite.createTestOrder(), time.Now().UTC())
	suite.Require().NoError(suite.repository.Save(ctx, confirmed))

	created, err := suite.repository.GetAllCreated(ctx)
	suite.Require().NoError(err)
	suite.Empty(created)
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
