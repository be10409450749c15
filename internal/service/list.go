package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"superlists/internal/metrics"
	"superlists/internal/model"
	"superlists/internal/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListService — списки, пункты и шаринг.
type ListService struct {
	lists  repo.ListRepository
	users  repo.UserRepository
	logger *zap.SugaredLogger
}

func NewListService(lists repo.ListRepository, users repo.UserRepository, logger *zap.SugaredLogger) *ListService {
	return &ListService{lists: lists, users: users, logger: logger}
}

// Sharee — адресат шаринга и, если он уже входил, его пользователь.
type Sharee struct {
	Email string
	User  *model.User
}

// Visible — списки, которые видит владелец email на странице "мои списки".
type Visible struct {
	Owned  []model.List
	Shared []model.List
}

// CreateList создаёт пустой список; owner может быть nil.
func (s *ListService) CreateList(ctx context.Context, owner *model.User) (*model.List, error) {
	l, err := s.lists.CreateList(ctx, ownerEmail(owner))
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	metrics.ListsCreated.WithLabelValues(metrics.OwnerLabel(owner != nil)).Inc()
	return l, nil
}

// CreateListWithFirstItem атомарно создаёт список с первым пунктом.
// Пустой текст — ValidationError, и ничего не записывается.
func (s *ListService) CreateListWithFirstItem(ctx context.Context, text string, owner *model.User) (*model.List, *ValidationError, error) {
	text, invalid := normalizeItemText(text)
	if invalid != nil {
		metrics.ValidationFailures.WithLabelValues(string(invalid.Kind)).Inc()
		return nil, invalid, nil
	}

	l, err := s.lists.CreateListWithItem(ctx, ownerEmail(owner), text)
	if err != nil {
		return nil, nil, fmt.Errorf("create list with item: %w", err)
	}
	metrics.ListsCreated.WithLabelValues(metrics.OwnerLabel(owner != nil)).Inc()
	metrics.ItemsAdded.Inc()
	return l, nil, nil
}

// GetList возвращает ErrListNotFound для неизвестного id.
func (s *ListService) GetList(ctx context.Context, id int64) (*model.List, error) {
	l, err := s.lists.GetList(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get list %d: %w", id, err)
	}
	return l, nil
}

// AddItem добавляет пункт в список. Пустой текст и дубликат в этом же списке
// дают разные ValidationError; в обоих случаях ничего не записывается.
func (s *ListService) AddItem(ctx context.Context, list *model.List, text string) (*model.Item, *ValidationError, error) {
	text, invalid := normalizeItemText(text)
	if invalid != nil {
		metrics.ValidationFailures.WithLabelValues(string(invalid.Kind)).Inc()
		return nil, invalid, nil
	}

	it, created, err := s.lists.AddItem(ctx, list.ID, text)
	if err != nil {
		return nil, nil, fmt.Errorf("add item to list %d: %w", list.ID, err)
	}
	if !created {
		invalid = duplicateItem()
		metrics.ValidationFailures.WithLabelValues(string(invalid.Kind)).Inc()
		return nil, invalid, nil
	}
	metrics.ItemsAdded.Inc()
	return it, nil, nil
}

// ShareList открывает список адресу email. Повторный вызов ничего не меняет.
// Права на шаринг не проверяются: достаточно знать адрес списка.
func (s *ListService) ShareList(ctx context.Context, list *model.List, email string) (*model.ListSharee, *ValidationError, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		invalid := invalidEmail()
		metrics.ValidationFailures.WithLabelValues(string(invalid.Kind)).Inc()
		return nil, invalid, nil
	}

	sharee, created, err := s.lists.AddSharee(ctx, list.ID, email)
	if err != nil {
		return nil, nil, fmt.Errorf("share list %d: %w", list.ID, err)
	}
	if created {
		metrics.Shares.WithLabelValues("created").Inc()
	} else {
		metrics.Shares.WithLabelValues("existing").Inc()
	}
	return sharee, nil, nil
}

// Sharees сопоставляет адресатов списка с зарегистрированными пользователями.
func (s *ListService) Sharees(ctx context.Context, list *model.List) ([]Sharee, error) {
	emails := make([]string, 0, len(list.Sharees))
	for _, sh := range list.Sharees {
		emails = append(emails, sh.Email)
	}
	users, err := s.users.GetUsersByEmails(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("resolve sharees: %w", err)
	}
	byEmail := make(map[string]*model.User, len(users))
	for i := range users {
		byEmail[users[i].Email] = &users[i]
	}

	out := make([]Sharee, 0, len(emails))
	for _, e := range emails {
		out = append(out, Sharee{Email: e, User: byEmail[e]})
	}
	return out, nil
}

// ListsVisibleTo возвращает собственные списки email и списки, которыми с ним поделились.
// Свой список, расшаренный самому себе, в Shared не попадает.
func (s *ListService) ListsVisibleTo(ctx context.Context, email string) (Visible, error) {
	owned, err := s.lists.ListsOwnedBy(ctx, email)
	if err != nil {
		return Visible{}, fmt.Errorf("owned lists: %w", err)
	}
	sharedAll, err := s.lists.ListsSharedWith(ctx, email)
	if err != nil {
		return Visible{}, fmt.Errorf("shared lists: %w", err)
	}

	seen := make(map[int64]struct{}, len(owned)+len(sharedAll))
	for _, l := range owned {
		seen[l.ID] = struct{}{}
	}
	shared := make([]model.List, 0, len(sharedAll))
	for _, l := range sharedAll {
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		shared = append(shared, l)
	}
	return Visible{Owned: owned, Shared: shared}, nil
}

// MyLists — страница "мои списки": владелец должен существовать.
func (s *ListService) MyLists(ctx context.Context, email string) (*model.User, Visible, error) {
	owner, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Visible{}, ErrUserNotFound
	}
	if err != nil {
		return nil, Visible{}, fmt.Errorf("get owner: %w", err)
	}
	visible, err := s.ListsVisibleTo(ctx, owner.Email)
	if err != nil {
		return nil, Visible{}, err
	}
	return owner, visible, nil
}

func ownerEmail(owner *model.User) *string {
	if owner == nil {
		return nil
	}
	email := owner.Email
	return &email
}
