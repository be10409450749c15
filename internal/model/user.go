package model

import "time"

// User — пользователь, идентифицируемый только email.
// Создаётся лениво при первом входе по токену либо административно.
type User struct {
	Email string `gorm:"primaryKey;size:254" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Token — ссылка для входа без пароля. Не истекает и может использоваться повторно.
// Email не уникален: на один адрес может быть выдано сколько угодно токенов.
type Token struct {
	ID    string `gorm:"primaryKey;type:uuid"`
	Email string `gorm:"not null;index;size:254"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
