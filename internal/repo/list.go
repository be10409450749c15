package repo

import (
	"context"

	"superlists/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListRepository — хранилище списков, пунктов и адресатов шаринга.
type ListRepository interface {
	CreateList(ctx context.Context, ownerEmail *string) (*model.List, error)
	// CreateListWithItem в одной транзакции создаёт список и его первый пункт.
	CreateListWithItem(ctx context.Context, ownerEmail *string, text string) (*model.List, error)
	// GetList загружает список с пунктами (по порядку создания) и адресатами.
	// Возвращает gorm.ErrRecordNotFound, если списка нет.
	GetList(ctx context.Context, id int64) (*model.List, error)
	// AddItem вставляет пункт, если пары (list_id, text) ещё нет.
	// created=false означает дубликат; при этом ничего не записывается.
	AddItem(ctx context.Context, listID int64, text string) (item *model.Item, created bool, err error)
	// AddSharee — get-or-create по паре (list_id, email).
	AddSharee(ctx context.Context, listID int64, email string) (sharee *model.ListSharee, created bool, err error)
	ListsOwnedBy(ctx context.Context, email string) ([]model.List, error)
	ListsSharedWith(ctx context.Context, email string) ([]model.List, error)
}

type listRepo struct {
	db *gorm.DB
}

// NewListRepository создаёт реализацию репозитория для List.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepo{db: db}
}

func (r *listRepo) CreateList(ctx context.Context, ownerEmail *string) (*model.List, error) {
	l := &model.List{OwnerEmail: ownerEmail}
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listRepo) CreateListWithItem(ctx context.Context, ownerEmail *string, text string) (*model.List, error) {
	l := &model.List{OwnerEmail: ownerEmail}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		it := model.Item{ListID: l.ID, Text: text}
		if err := tx.Create(&it).Error; err != nil {
			return err
		}
		l.Items = []model.Item{it}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listRepo) GetList(ctx context.Context, id int64) (*model.List, error) {
	var l model.List
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID("items")).
		Preload("Sharees", orderByID("listsharees")).
		Where("lists.id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listRepo) AddItem(ctx context.Context, listID int64, text string) (*model.Item, bool, error) {
	it := &model.Item{ListID: listID, Text: text}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "list_id"}, {Name: "text"}},
		DoNothing: true,
	}).Create(it)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, false, nil
	}
	return it, true, nil
}

func (r *listRepo) AddSharee(ctx context.Context, listID int64, email string) (*model.ListSharee, bool, error) {
	s := &model.ListSharee{ListID: listID, Email: email}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "list_id"}, {Name: "email"}},
		DoNothing: true,
	}).Create(s)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return s, true, nil
	}

	var existing model.ListSharee
	if err := r.db.WithContext(ctx).Where("list_id = ? AND email = ?", listID, email).First(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *listRepo) ListsOwnedBy(ctx context.Context, email string) ([]model.List, error) {
	lists := []model.List{}
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID("items")).
		Where("owner_email = ?", email).
		Order("lists.id ASC").
		Find(&lists).Error
	return lists, err
}

func (r *listRepo) ListsSharedWith(ctx context.Context, email string) ([]model.List, error) {
	lists := []model.List{}
	shared := r.db.Model(&model.ListSharee{}).Select("list_id").Where("email = ?", email)
	// IN по подзапросу сам убирает повторы
	err := r.db.WithContext(ctx).
		Preload("Items", orderByID("items")).
		Where("lists.id IN (?)", shared).
		Order("lists.id ASC").
		Find(&lists).Error
	return lists, err
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id ASC")
	}
}
