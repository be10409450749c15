package repo

import (
	"context"

	"superlists/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenRepository — хранилище токенов входа.
type TokenRepository interface {
	// CreateToken выдаёт новый случайный токен (uuid v4), не трогая прежние токены адреса.
	CreateToken(ctx context.Context, email string) (*model.Token, error)
	// GetToken возвращает gorm.ErrRecordNotFound для неизвестного идентификатора.
	GetToken(ctx context.Context, id string) (*model.Token, error)
}

type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepository создаёт реализацию репозитория для Token.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) CreateToken(ctx context.Context, email string) (*model.Token, error) {
	t := &model.Token{ID: uuid.NewString(), Email: email}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tokenRepo) GetToken(ctx context.Context, id string) (*model.Token, error) {
	// столбец uuid в postgres не примет произвольную строку
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var t model.Token
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
