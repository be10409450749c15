package repo

import (
	"context"

	"superlists/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository — хранилище пользователей (ключ — email).
type UserRepository interface {
	// GetUserByEmail возвращает gorm.ErrRecordNotFound, если пользователя нет.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// GetUsersByEmails возвращает только существующих пользователей из списка адресов.
	GetUsersByEmails(ctx context.Context, emails []string) ([]model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// GetOrCreateUser атомарно находит или создаёт пользователя.
	// created=true, если запись появилась в этой операции.
	GetOrCreateUser(ctx context.Context, email string) (user *model.User, created bool, err error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUsersByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	users := []model.User{}
	if len(emails) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&users).Error
	return users, err
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetOrCreateUser(ctx context.Context, email string) (*model.User, bool, error) {
	u := &model.User{Email: email}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(u)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return u, true, nil
	}

	existing, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
