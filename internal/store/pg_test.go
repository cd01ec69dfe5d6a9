package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

func testLogRecord(ref string, status domain.TransactionStatus) *schema.TransactionRequest {
	return &schema.TransactionRequest{
		ParentID:          domain.ParentIDSentinel,
		RefNumber:         ref,
		TransactionType:   domain.TransactionTypeOrder,
		TransactionStatus: status,
		Amount:            2.5,
		Currency:          "DAI",
		Address:           "5Customer",
		BlockNumber:       100,
		CreatedAt:         time.Now().UTC(),
	}
}

func TestPGStore_CreateLog_DuplicateIsNoOp(t *testing.T) {
	st := NewPGStore(testDB)
	ctx := context.Background()

	ref := "0xorder-dup"
	require.NoError(t, st.CreateLog(ctx, testLogRecord(ref, domain.OrderStatusPaid)))

	// A concurrent duplicate for the same (ref, status) must not create a
	// second row
	duplicate := testLogRecord(ref, domain.OrderStatusPaid)
	duplicate.Amount = 99
	require.NoError(t, st.CreateLog(ctx, duplicate))

	var count int64
	err := testDB.Model(&schema.TransactionRequest{}).
		Where("ref_number = ? AND transaction_status = ?", ref, domain.OrderStatusPaid).
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The surviving row is the first write
	record, err := st.GetLogByRefAndStatus(ctx, ref, domain.OrderStatusPaid)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.InDelta(t, 2.5, record.Amount, 1e-9)
}

func TestPGStore_CreateLog_DifferentStatusesCoexist(t *testing.T) {
	st := NewPGStore(testDB)
	ctx := context.Background()

	ref := "0xorder-statuses"
	require.NoError(t, st.CreateLog(ctx, testLogRecord(ref, domain.OrderStatusCreated)))
	require.NoError(t, st.CreateLog(ctx, testLogRecord(ref, domain.OrderStatusPaid)))

	var count int64
	err := testDB.Model(&schema.TransactionRequest{}).
		Where("ref_number = ?", ref).
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPGStore_GetLogByRefAndStatus_MissReturnsNil(t *testing.T) {
	st := NewPGStore(testDB)

	record, err := st.GetLogByRefAndStatus(context.Background(), "0xno-such-order", domain.OrderStatusPaid)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestPGStore_GetLatestLogByRef(t *testing.T) {
	st := NewPGStore(testDB)
	ctx := context.Background()

	ref := "0xorder-latest"

	// No records yet
	record, err := st.GetLatestLogByRef(ctx, ref)
	require.NoError(t, err)
	assert.Nil(t, record)

	first := testLogRecord(ref, domain.OrderStatusCreated)
	require.NoError(t, st.CreateLog(ctx, first))

	second := testLogRecord(ref, domain.OrderStatusPaid)
	second.ParentID = first.ID
	require.NoError(t, st.CreateLog(ctx, second))

	// Latest by insertion order, irrespective of status
	record, err = st.GetLatestLogByRef(ctx, ref)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, second.ID, record.ID)
	assert.Equal(t, domain.OrderStatusPaid, record.TransactionStatus)
	assert.Equal(t, first.ID, record.ParentID)
}

func TestPGStore_CreateNotification(t *testing.T) {
	st := NewPGStore(testDB)
	ctx := context.Background()

	now := time.Now().UTC()
	notification := &schema.Notification{
		Role:        schema.NotificationRoleCustomer,
		EntityType:  "Genetic Testing Order",
		Entity:      "Order Created",
		ReferenceID: "0xorder-notif",
		Description: "You've successfully submitted your requested test for 0xorder-notif.",
		From:        "Genelink Network",
		To:          "5Customer",
		BlockNumber: "100",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.CreateNotification(ctx, notification))
	assert.NotZero(t, notification.ID)

	var stored schema.Notification
	err := testDB.Where("reference_id = ?", "0xorder-notif").First(&stored).Error
	require.NoError(t, err)
	assert.Equal(t, schema.NotificationRoleCustomer, stored.Role)
	assert.False(t, stored.Read)
	assert.False(t, stored.DeletedAt.Valid)
}

func TestPGStore_RecordChainEvent(t *testing.T) {
	st := NewPGStore(testDB)
	ctx := context.Background()

	event := &schema.ChainEvent{
		EventType:   domain.EventTypeOrderPaid,
		RefNumber:   "0xorder-journal",
		BlockNumber: 42,
		Raw:         datatypes.JSON(`{"id":"0xorder-journal","status":"Paid"}`),
	}
	require.NoError(t, st.RecordChainEvent(ctx, event))
	assert.NotZero(t, event.ID)

	var stored schema.ChainEvent
	err := testDB.Where("ref_number = ?", "0xorder-journal").First(&stored).Error
	require.NoError(t, err)
	assert.Equal(t, domain.EventTypeOrderPaid, stored.EventType)
	assert.Equal(t, uint64(42), stored.BlockNumber)
	assert.JSONEq(t, `{"id":"0xorder-journal","status":"Paid"}`, string(stored.Raw))
}

func TestPGStore_BlockCursor(t *testing.T) {
	st := NewPGStore(testDB)
	ctx := context.Background()

	// Unknown chain starts at zero
	block, err := st.GetBlockCursor(ctx, "unknown-chain")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), block)

	require.NoError(t, st.SetBlockCursor(ctx, "genelink-test", 12345))

	block, err = st.GetBlockCursor(ctx, "genelink-test")
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), block)

	// Overwrite moves the cursor forward
	require.NoError(t, st.SetBlockCursor(ctx, "genelink-test", 12400))

	block, err = st.GetBlockCursor(ctx, "genelink-test")
	require.NoError(t, err)
	assert.Equal(t, uint64(12400), block)
}

func TestConfigureConnectionPool(t *testing.T) {
	// Zero values fall back to defaults without error
	require.NoError(t, ConfigureConnectionPool(testDB, 0, 0, 0, 0))
	require.NoError(t, ConfigureConnectionPool(testDB, 30, 10, time.Minute, 2*time.Minute))

	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	assert.Equal(t, 30, sqlDB.Stats().MaxOpenConnections)
}
