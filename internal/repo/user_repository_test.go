package repo

import (
	"context"
	"testing"

	"superlists/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Email: "john@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", u.Email)

	// поиск по email — найдено
	got, err := r.GetUserByEmail(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	// email — первичный ключ, вторая вставка должна дать ошибку
	_, err = r.CreateUser(ctx, &model.User{Email: "john@example.com"})
	assert.Error(t, err)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByEmail(ctx, "nobody@example.com")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUserRepository_GetOrCreateUser(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, created, err := r.GetOrCreateUser(ctx, "edith@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "edith@example.com", u.Email)

	again, created, err := r.GetOrCreateUser(ctx, "edith@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.Email, again.Email)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_GetUsersByEmails(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	_, _, err := r.GetOrCreateUser(ctx, "a@example.com")
	require.NoError(t, err)

	users, err := r.GetUsersByEmails(ctx, []string{"a@example.com", "ghost@example.com"})
	require.NoError(t, err)
	if assert.Len(t, users, 1) {
		assert.Equal(t, "a@example.com", users[0].Email)
	}

	// пустой вход — без запроса к БД
	none, err := r.GetUsersByEmails(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
