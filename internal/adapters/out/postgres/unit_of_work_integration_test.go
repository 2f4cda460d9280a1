package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.HistoryDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, slog.Default())
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_history").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// behave as expected on an otherwise idle unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin again is a no-op, not a nested transaction
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// No active transaction anymore
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

// TestUnitOfWork_CommittedWritePersists verifies a committed transaction
// leaves both the order row and its history entry in place.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedWritePersists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
	suite.assertHistoryCount(1)
}

// TestUnitOfWork_RollbackLeavesNoPartialRows verifies a rolled back
// transaction writes neither the order nor its history entry.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackLeavesNoPartialRows() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
	suite.assertHistoryCount(0)
}

// TestUnitOfWork_PostCommitHooksRunAfterCommit verifies hooks run exactly
// once, in registration order, and only after the transaction has landed.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PostCommitHooksRunAfterCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	var calls []string
	uow.RegisterPostCommit(func(ctx context.Context) error {
		// The row must be visible outside the transaction by now
		var count int64
		suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
		suite.Equal(int64(1), count)
		calls = append(calls, "first")
		return nil
	})
	uow.RegisterPostCommit(func(ctx context.Context) error {
		calls = append(calls, "second")
		return nil
	})

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{"first", "second"}, calls)
}

// TestUnitOfWork_PostCommitHookFailureIsSwallowed verifies a failing hook
// does not fail the commit and does not stop later hooks.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PostCommitHookFailureIsSwallowed() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	var secondRan bool
	uow.RegisterPostCommit(func(ctx context.Context) error {
		return errors.New("mirror unavailable")
	})
	uow.RegisterPostCommit(func(ctx context.Context) error {
		secondRan = true
		return nil
	})

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.True(secondRan)
	suite.assertOrderCount(1)
}

// TestUnitOfWork_RollbackDiscardsHooks verifies registered hooks never run
// when the transaction is rolled back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsHooks() {
	ctx := context.Background()
	uow := suite.factory.Create()

	var hookRan bool
	uow.RegisterPostCommit(func(ctx context.Context) error {
		hookRan = true
		return nil
	})

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.False(hookRan)
}

// TestUnitOfWork_StatusUpdateWorkflow walks one order through the full
// workflow across separate transactions and checks the resulting timeline.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusUpdateWorkflow() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	for _, next := range []order.Status{order.Paid, order.Preparing, order.Sent} {
		step := suite.factory.Create()
		suite.Require().NoError(step.Begin(ctx))

		loaded, err := step.OrderRepository().Get(ctx, testOrder.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(loaded.ChangeStatus(next))
		suite.Require().NoError(step.OrderRepository().Update(ctx, loaded))
		suite.Require().NoError(step.Commit(ctx))
	}

	history, err := suite.factory.Create().OrderRepository().GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 4)
	suite.Equal(order.Received, history[0].Status())
	suite.Equal(order.Sent, history[3].Status())
}

// TestUnitOfWork_WithoutTransaction verifies repository access outside a
// transaction operates directly on the main connection.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	clientID, err := kernel.NewClientID(123)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(clientID, time.Now().UTC().Add(-time.Minute))
	suite.Require().NoError(err)

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertHistoryCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.HistoryDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
