package service

import (
	"context"
	"mime/multipart"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
)

type fakeImageStore struct {
	path  string
	saves int
}

func (f *fakeImageStore) Save(*multipart.FileHeader) (string, error) {
	f.saves++
	return f.path, nil
}

func newProductService(t *testing.T) (*ProductService, sqlmock.Sqlmock, *fakeImageStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	images := &fakeImageStore{path: "/uploads/new.png"}
	svc := NewProductService(*repository.NewMenuRepository(db), images)
	return svc, mock, images
}

func menuItemColumns() []string {
	return []string{"id", "name", "category_id", "category_name", "image_path", "created_at"}
}

func TestProductCreateWithoutImageLeavesPathEmpty(t *testing.T) {
	svc, mock, images := newProductService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO menu_items`)).
		WithArgs("Pho Bo", 1, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	item := &entity.MenuItem{Name: "Pho Bo", CategoryID: 1}
	created, err := svc.Create(context.Background(), item, nil)
	require.NoError(t, err)
	assert.Empty(t, created.ImagePath)
	assert.Zero(t, images.saves)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateWithoutImagePreservesPath(t *testing.T) {
	svc, mock, images := newProductService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE m.id = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(menuItemColumns()).
			AddRow(3, "Pho Bo", 1, "Food", "/uploads/old.png", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM menu_item_sizes WHERE menu_item_id = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "menu_item_id", "name", "price"}))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE menu_items SET`)).
		WithArgs("Pho Ga", 1, "/uploads/old.png", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM menu_item_sizes`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	item := &entity.MenuItem{ID: 3, Name: "Pho Ga", CategoryID: 1}
	updated, err := svc.Update(context.Background(), item, nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/old.png", updated.ImagePath)
	assert.Zero(t, images.saves)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateMissingItem(t *testing.T) {
	svc, mock, _ := newProductService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE m.id = ?`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(menuItemColumns()))

	item := &entity.MenuItem{ID: 99, Name: "Ghost", CategoryID: 1}
	_, err := svc.Update(context.Background(), item, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductCreateRequiresName(t *testing.T) {
	svc, _, _ := newProductService(t)

	_, err := svc.Create(context.Background(), &entity.MenuItem{CategoryID: 1}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}
