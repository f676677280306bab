package repositories

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

type TransactionLogRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    TransactionLogRepository
	context context.Context
}

func (suite *TransactionLogRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewTransactionLogRepo(mock)
	suite.context = context.Background()
}

func (suite *TransactionLogRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestTransactionLogRepoTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionLogRepoTestSuite))
}

func (suite *TransactionLogRepoTestSuite) TestAppend_WithPreviousQuantity() {
	itemID := int64(1)
	previous := 20
	entry := &models.TransactionLogEntry{
		Action:           models.TxActionAdd,
		ItemID:           &itemID,
		ItemName:         "Rice",
		QuantityChange:   10,
		PreviousQuantity: &previous,
		NewQuantity:      30,
	}

	suite.mock.ExpectExec(`INSERT INTO transaction_log \(action, item_id, item_name, quantity_change, previous_quantity, new_quantity, timestamp\)`).
		WithArgs(entry.Action, entry.ItemID, entry.ItemName, entry.QuantityChange, entry.PreviousQuantity, entry.NewQuantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Append(suite.context, entry)
	assert.NoError(suite.T(), err)
}

func (suite *TransactionLogRepoTestSuite) TestAppend_DeletionKeepsNameSnapshot() {
	// Deletions write a nil item id: the referenced row no longer exists.
	entry := &models.TransactionLogEntry{
		Action:         models.TxActionDelete,
		ItemName:       "Webcam",
		QuantityChange: -4,
		NewQuantity:    0,
	}

	suite.mock.ExpectExec(`INSERT INTO transaction_log`).
		WithArgs(entry.Action, (*int64)(nil), entry.ItemName, entry.QuantityChange, (*int)(nil), entry.NewQuantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Append(suite.context, entry)
	assert.NoError(suite.T(), err)
}

func (suite *TransactionLogRepoTestSuite) TestListRecent() {
	itemID := int64(1)
	previous := 20
	now := time.Now()

	suite.mock.ExpectQuery(`FROM transaction_log\s+ORDER BY timestamp DESC, id DESC\s+LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "action", "item_id", "item_name", "quantity_change", "previous_quantity", "new_quantity", "timestamp",
		}).
			AddRow(int64(2), models.TxActionRemove, &itemID, "Rice", -5, &previous, 15, now).
			AddRow(int64(1), models.TxActionInitialAdd, &itemID, "Rice", 20, (*int)(nil), 20, now))

	entries, err := suite.repo.ListRecent(suite.context, 50)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), models.TxActionRemove, entries[0].Action)
	assert.Nil(suite.T(), entries[1].PreviousQuantity)
	assert.Equal(suite.T(), 20, entries[1].NewQuantity)
}

func (suite *TransactionLogRepoTestSuite) TestDeleteAll() {
	suite.mock.ExpectExec(`DELETE FROM transaction_log`).
		WillReturnResult(pgxmock.NewResult("DELETE", 12))

	err := suite.repo.DeleteAll(suite.context)
	assert.NoError(suite.T(), err)
}
