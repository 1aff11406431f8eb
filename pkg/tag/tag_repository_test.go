package tag_test

import (
	"context"
	"testing"

	"Recipe-App-Backend/pkg/tag"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestTagRepository_GetTags(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("scopes the query to the user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(uuid.NewString(), userID, "Vegan").
			AddRow(uuid.NewString(), userID, "Dessert")
		mock.ExpectQuery(`SELECT \* FROM "tags" WHERE tags\.user_id = \$1 ORDER BY name desc`).
			WithArgs(userID).
			WillReturnRows(rows)

		tags, err := repo.GetTags(ctx, userID, false)

		assert.NoError(t, err)
		assert.Len(t, tags, 2)
		assert.Equal(t, "Vegan", tags[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("assigned only joins recipes and deduplicates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(uuid.NewString(), userID, "Dinner")
		mock.ExpectQuery(`SELECT DISTINCT tags\.\* FROM "tags" JOIN recipe_tags ON recipe_tags\.tag_id = tags\.id WHERE tags\.user_id = \$1 ORDER BY name desc`).
			WithArgs(userID).
			WillReturnRows(rows)

		tags, err := repo.GetTags(ctx, userID, true)

		assert.NoError(t, err)
		assert.Len(t, tags, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_GetTagByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	tagID := uuid.NewString()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(tagID, userID, "Vegan")
		mock.ExpectQuery(`SELECT \* FROM "tags" WHERE id = \$1 AND user_id = \$2`).
			WillReturnRows(rows)

		got, err := repo.GetTagByID(ctx, tagID, userID)

		assert.NoError(t, err)
		assert.Equal(t, "Vegan", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("another user's tag is invisible", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "tags" WHERE id = \$1 AND user_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))

		_, err := repo.GetTagByID(ctx, tagID, userID)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_GetOrCreateTag(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("returns the existing row without inserting", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		existingID := uuid.NewString()
		rows := sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(existingID, userID, "Vegan")
		mock.ExpectQuery(`SELECT \* FROM "tags" WHERE "tags"\."user_id" = \$1 AND "tags"\."name" = \$2`).
			WillReturnRows(rows)

		got, err := repo.GetOrCreateTag(ctx, userID, "Vegan")

		assert.NoError(t, err)
		assert.Equal(t, existingID, got.ID.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a malformed user id before touching the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		_, err := repo.GetOrCreateTag(ctx, "not-a-uuid", "Vegan")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_DeleteTag(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	tagID := uuid.NewString()

	t.Run("deletes the scoped row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "tags" WHERE id = \$1 AND user_id = \$2`).
			WithArgs(tagID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteTag(ctx, tagID, userID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero affected rows reads as not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := tag.NewTagRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "tags" WHERE id = \$1 AND user_id = \$2`).
			WithArgs(tagID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteTag(ctx, tagID, userID)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
