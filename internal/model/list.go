package model

import (
	"strconv"
	"time"
)

// EmptyListName отображается для списка без единого пункта.
const EmptyListName = "Empty List"

// List — список дел. Владелец опционален и назначается только при создании.
type List struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	OwnerEmail *string `gorm:"index;size:254"` // ссылка на users.email

	// Связи
	Owner   *User        `gorm:"foreignKey:OwnerEmail;references:Email;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Items   []Item       `gorm:"constraint:OnDelete:CASCADE"`
	Sharees []ListSharee `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Name — текст первого пункта. Items должны быть загружены в порядке id.
func (l *List) Name() string {
	if len(l.Items) == 0 {
		return EmptyListName
	}
	return l.Items[0].Text
}

// URL — канонический адрес списка.
func (l *List) URL() string {
	return "/lists/" + strconv.FormatInt(l.ID, 10) + "/"
}

// HasOwner сообщает, принадлежит ли список кому-либо.
func (l *List) HasOwner() bool {
	return l.OwnerEmail != nil && *l.OwnerEmail != ""
}

// Item — пункт списка. Пара (list_id, text) уникальна.
type Item struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	ListID int64  `gorm:"not null;uniqueIndex:idx_items_list_text"`
	Text   string `gorm:"not null;uniqueIndex:idx_items_list_text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// ListSharee связывает список с адресом, которому он показан.
// Адрес не обязан принадлежать зарегистрированному пользователю.
type ListSharee struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	ListID int64  `gorm:"not null;uniqueIndex:idx_listsharees_list_email"`
	Email  string `gorm:"not null;size:254;uniqueIndex:idx_listsharees_list_email;index:idx_listsharees_email"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ListSharee) TableName() string { return "listsharees" }
