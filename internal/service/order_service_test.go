package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

func newOrderService(t *testing.T) (*OrderService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewOrderService(*repository.NewOrderRepository(db), nil)
	return svc, mock
}

func expectStatusExists(mock sqlmock.Sqlmock, id int, exists bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM order_statuses WHERE id = ?)`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectOrderReload(mock sqlmock.Sqlmock, orderID, statusID int, statusName entity.StatusName) {
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE o.id = ?`)).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "order_date", "total_amount", "status_id", "name"}).
			AddRow(orderID, 1, "An Nguyen", time.Now(), 50.0, statusID, statusName))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM order_items i`)).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "size_id", "combo_id", "quantity", "line_price", "menu_name", "size_name", "combo_name"}))
}

// Transitions have no legality check; moving Completed back to Pending
// succeeds the same as any forward move.
func TestUpdateStatusAllowsArbitraryTransitions(t *testing.T) {
	svc, mock := newOrderService(t)

	expectStatusExists(mock, 1, true)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status_id = ? WHERE id = ?`)).
		WithArgs(1, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectOrderReload(mock, 7, 1, entity.StatusPending)

	order, err := svc.UpdateStatus(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.StatusName)
	assert.Equal(t, 1, order.StatusID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc, mock := newOrderService(t)

	expectStatusExists(mock, 99, false)

	_, err := svc.UpdateStatus(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc, mock := newOrderService(t)

	expectStatusExists(mock, 1, true)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status_id = ? WHERE id = ?`)).
		WithArgs(1, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.UpdateStatus(context.Background(), 404, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHistoryOnlyCompletedOrders(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE s.name = ?`)).
		WithArgs(entity.StatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "order_date", "total_amount", "status_id", "name"}).
			AddRow(3, 1, "An Nguyen", time.Now(), 120.5, 5, "Completed"))

	orders, err := svc.History(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.StatusCompleted, orders[0].StatusName)
}
