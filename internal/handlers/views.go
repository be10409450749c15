package handlers

import (
	"encoding/json"
	"net/http"

	"superlists/internal/model"
	"superlists/internal/service"
)

// FormView — содержимое формы, возвращаемое обратно пользователю.
type FormView struct {
	Text   string `json:"text"`
	Sharee string `json:"sharee,omitempty"`
}

type HomeView struct {
	Form  FormView `json:"form"`
	Error string   `json:"error,omitempty"`
}

type ShareeView struct {
	Email      string `json:"email"`
	Registered bool   `json:"registered"`
}

type ListView struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Owner   *string      `json:"owner"`
	URL     string       `json:"url"`
	Sharees []ShareeView `json:"sharees"`
}

type ItemView struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type ListPageView struct {
	List  ListView   `json:"list"`
	Items []ItemView `json:"items"`
	Form  FormView   `json:"form"`
	Error string     `json:"error,omitempty"`
}

// ListSummary — строка на странице "мои списки".
type ListSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Owner *string `json:"owner"`
	URL   string  `json:"url"`
}

type MyListsView struct {
	Owner       string        `json:"owner"`
	OwnedLists  []ListSummary `json:"owned_lists"`
	SharedLists []ListSummary `json:"shared_lists"`
}

type MessageView struct {
	Message string `json:"message"`
}

func newListPageView(l *model.List, sharees []service.Sharee) ListPageView {
	items := make([]ItemView, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, ItemView{ID: it.ID, Text: it.Text})
	}
	shv := make([]ShareeView, 0, len(sharees))
	for _, sh := range sharees {
		shv = append(shv, ShareeView{Email: sh.Email, Registered: sh.User != nil})
	}
	return ListPageView{
		List: ListView{
			ID:      l.ID,
			Name:    l.Name(),
			Owner:   l.OwnerEmail,
			URL:     l.URL(),
			Sharees: shv,
		},
		Items: items,
	}
}

func summaries(lists []model.List) []ListSummary {
	out := make([]ListSummary, 0, len(lists))
	for i := range lists {
		l := &lists[i]
		out = append(out, ListSummary{ID: l.ID, Name: l.Name(), Owner: l.OwnerEmail, URL: l.URL()})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
