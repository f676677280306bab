package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InventoryRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    InventoryRepository
	context context.Context
	now     time.Time
}

func (suite *InventoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewInventoryRepo(mock)
	suite.context = context.Background()
	suite.now = time.Now()
}

func (suite *InventoryRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestInventoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepoTestSuite))
}

func (suite *InventoryRepoTestSuite) itemRows(rows ...[]any) *pgxmock.Rows {
	r := pgxmock.NewRows([]string{"id", "name", "quantity", "created_at", "updated_at"})
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}

func (suite *InventoryRepoTestSuite) TestGetByName_Found() {
	suite.mock.ExpectQuery(`SELECT id, name, quantity, created_at, updated_at\s+FROM inventory\s+WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("Rice").
		WillReturnRows(suite.itemRows([]any{int64(1), "Rice", 30, suite.now, suite.now}))

	item, err := suite.repo.GetByName(suite.context, "Rice")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), item)
	assert.Equal(suite.T(), int64(1), item.ID)
	assert.Equal(suite.T(), "Rice", item.Name)
	assert.Equal(suite.T(), 30, item.Quantity)
}

func (suite *InventoryRepoTestSuite) TestGetByName_Absent() {
	suite.mock.ExpectQuery(`WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("ghost").
		WillReturnRows(suite.itemRows())

	item, err := suite.repo.GetByName(suite.context, "ghost")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), item)
}

func (suite *InventoryRepoTestSuite) TestGetByID_Absent() {
	suite.mock.ExpectQuery(`FROM inventory\s+WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(suite.itemRows())

	item, err := suite.repo.GetByID(suite.context, 42)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), item)
}

func (suite *InventoryRepoTestSuite) TestCreate_Success() {
	suite.mock.ExpectQuery(`INSERT INTO inventory \(name, quantity, created_at, updated_at\)\s+VALUES \(\$1, \$2, NOW\(\), NOW\(\)\)\s+RETURNING`).
		WithArgs("Rice", 10).
		WillReturnRows(suite.itemRows([]any{int64(7), "Rice", 10, suite.now, suite.now}))

	item, err := suite.repo.Create(suite.context, "Rice", 10)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), item.ID)
	assert.Equal(suite.T(), 10, item.Quantity)
}

func (suite *InventoryRepoTestSuite) TestUpdateQuantity_Success() {
	suite.mock.ExpectExec(`UPDATE inventory\s+SET quantity = \$1, updated_at = NOW\(\)\s+WHERE id = \$2`).
		WithArgs(25, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateQuantity(suite.context, 7, 25)
	assert.NoError(suite.T(), err)
}

func (suite *InventoryRepoTestSuite) TestUpdateQuantity_MissingRow() {
	suite.mock.ExpectExec(`UPDATE inventory`).
		WithArgs(25, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdateQuantity(suite.context, 99, 25)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "no item with id 99")
}

func (suite *InventoryRepoTestSuite) TestList_OrdersByRecency() {
	suite.mock.ExpectQuery(`FROM inventory\s+ORDER BY updated_at DESC, id DESC`).
		WillReturnRows(suite.itemRows(
			[]any{int64(2), "Mouse", 3, suite.now, suite.now},
			[]any{int64(1), "Laptop", 15, suite.now, suite.now},
		))

	items, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "Mouse", items[0].Name)
}

func (suite *InventoryRepoTestSuite) TestLowStock() {
	suite.mock.ExpectQuery(`WHERE quantity > 0 AND quantity < \$1\s+ORDER BY quantity ASC, name ASC`).
		WithArgs(5).
		WillReturnRows(suite.itemRows([]any{int64(5), "Headset", 2, suite.now, suite.now}))

	items, err := suite.repo.LowStock(suite.context, 5)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), "Headset", items[0].Name)
}

func (suite *InventoryRepoTestSuite) TestOutOfStock() {
	suite.mock.ExpectQuery(`WHERE quantity <= 0\s+ORDER BY name ASC`).
		WillReturnRows(suite.itemRows([]any{int64(3), "Keyboard", 0, suite.now, suite.now}))

	items, err := suite.repo.OutOfStock(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
}

func (suite *InventoryRepoTestSuite) TestSearch_WrapsTermInWildcards() {
	suite.mock.ExpectQuery(`WHERE name ILIKE \$1`).
		WithArgs("%cable%").
		WillReturnRows(suite.itemRows(
			[]any{int64(6), "HDMI Cable", 12, suite.now, suite.now},
			[]any{int64(7), "USB Cable", 25, suite.now, suite.now},
		))

	items, err := suite.repo.Search(suite.context, "cable")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
}

func (suite *InventoryRepoTestSuite) TestStats() {
	suite.mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE quantity > 0 AND quantity < \$1\)`).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum", "low", "out"}).
			AddRow(10, 76, 4, 1))

	stats, err := suite.repo.Stats(suite.context, 5)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, stats.TotalItems)
	assert.Equal(suite.T(), 76, stats.TotalQuantity)
	assert.Equal(suite.T(), 4, stats.LowStockCount)
	assert.Equal(suite.T(), 1, stats.OutOfStockCount)
}

func (suite *InventoryRepoTestSuite) TestGetByName_QueryError() {
	suite.mock.ExpectQuery(`WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("rice").
		WillReturnError(errors.New("connection reset"))

	item, err := suite.repo.GetByName(suite.context, "rice")
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), item)
}
