package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
)

func TestCategoryRepositoryListSortOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Drinks was created first but sorts after Food.
	rows := sqlmock.NewRows([]string{"id", "name", "sort_order"}).
		AddRow(2, "Food", 0).
		AddRow(1, "Drinks", 1)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY sort_order ASC`)).
		WillReturnRows(rows)

	repo := NewCategoryRepository(db)
	categories, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Drinks", categories[1].Name)
}

func TestCategoryRepositoryUpdateVanishedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE categories SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCategoryRepository(db)
	_, err = repo.Update(context.Background(), &entity.Category{ID: 9, Name: "Gone"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepositoryDeleteAbsentIsNoError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = ?`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCategoryRepository(db)
	assert.NoError(t, repo.Delete(context.Background(), 9))
}
