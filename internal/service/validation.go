package service

import (
	"net/mail"
	"strings"
)

// Сообщения, которые видит пользователь.
const (
	EmptyItemError     = "You can't have an empty list item"
	DuplicateItemError = "You've already got this in your list"
	InvalidEmailError  = "Enter a valid email address."
)

// ValidationKind различает причины отказа.
type ValidationKind string

const (
	ValidationBlank     ValidationKind = "blank"
	ValidationDuplicate ValidationKind = "duplicate"
	ValidationEmail     ValidationKind = "email"
)

// ValidationError — отказ, который показывается на той же странице.
// Возвращается отдельным результатом, а не через error: ничего не было записано.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func blankItem() *ValidationError {
	return &ValidationError{Kind: ValidationBlank, Field: "text", Message: EmptyItemError}
}

func duplicateItem() *ValidationError {
	return &ValidationError{Kind: ValidationDuplicate, Field: "text", Message: DuplicateItemError}
}

func invalidEmail() *ValidationError {
	return &ValidationError{Kind: ValidationEmail, Field: "sharee", Message: InvalidEmailError}
}

// normalizeItemText обрезает пробелы по краям; пустой результат — пустой пункт.
func normalizeItemText(text string) (string, *ValidationError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", blankItem()
	}
	return text, nil
}

// ValidEmail принимает только голый адрес вида user@host, без отображаемого имени.
// Домен должен содержать точку; исключение — localhost.
func ValidEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	if addr.Address != email {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".") || strings.EqualFold(domain, "localhost")
}
