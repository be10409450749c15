package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"superlists/internal/middleware"
	"superlists/internal/model"
	"superlists/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListHandler обрабатывает страницы списков.
type ListHandler struct {
	ListService *service.ListService
	Logger      *zap.SugaredLogger
}

func NewListHandler(listService *service.ListService, logger *zap.SugaredLogger) *ListHandler {
	return &ListHandler{ListService: listService, Logger: logger}
}

// Home — главная: пустая форма нового пункта.
func (h *ListHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HomeView{Form: FormView{}})
}

// NewList создаёт список вместе с первым пунктом.
// Вошедший пользователь становится владельцем.
func (h *ListHandler) NewList(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	owner, _ := middleware.GetUserFromContext(r.Context())

	l, invalid, err := h.ListService.CreateListWithFirstItem(r.Context(), text, owner)
	if err != nil {
		h.Logger.Errorw("NewList: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if invalid != nil {
		h.Logger.Warnw("NewList: validation failed", "kind", invalid.Kind)
		writeJSON(w, http.StatusBadRequest, HomeView{Form: FormView{Text: text}, Error: invalid.Message})
		return
	}

	http.Redirect(w, r, l.URL(), http.StatusFound)
}

// ViewList показывает список с пунктами.
func (h *ListHandler) ViewList(w http.ResponseWriter, r *http.Request) {
	l, ok := h.loadList(w, r)
	if !ok {
		return
	}
	h.renderList(w, r, http.StatusOK, l, FormView{}, "")
}

// AddItem добавляет пункт в существующий список.
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	l, ok := h.loadList(w, r)
	if !ok {
		return
	}

	text := r.FormValue("text")
	_, invalid, err := h.ListService.AddItem(r.Context(), l, text)
	if err != nil {
		h.Logger.Errorw("AddItem: service error", "list_id", l.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if invalid != nil {
		h.Logger.Warnw("AddItem: validation failed", "list_id", l.ID, "kind", invalid.Kind)
		h.renderList(w, r, http.StatusBadRequest, l, FormView{Text: text}, invalid.Message)
		return
	}

	http.Redirect(w, r, l.URL(), http.StatusFound)
}

// Share открывает список другому адресу.
func (h *ListHandler) Share(w http.ResponseWriter, r *http.Request) {
	l, ok := h.loadList(w, r)
	if !ok {
		return
	}

	sharee := r.FormValue("sharee")
	_, invalid, err := h.ListService.ShareList(r.Context(), l, sharee)
	if err != nil {
		h.Logger.Errorw("Share: service error", "list_id", l.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if invalid != nil {
		h.Logger.Warnw("Share: validation failed", "list_id", l.ID, "sharee", sharee)
		h.renderList(w, r, http.StatusBadRequest, l, FormView{Sharee: sharee}, invalid.Message)
		return
	}

	http.Redirect(w, r, l.URL(), http.StatusFound)
}

// MyLists — собственные и расшаренные списки пользователя.
func (h *ListHandler) MyLists(w http.ResponseWriter, r *http.Request) {
	email, ok := pathParam(r, "email")
	if !ok {
		http.NotFound(w, r)
		return
	}

	owner, visible, err := h.ListService.MyLists(r.Context(), email)
	if errors.Is(err, service.ErrUserNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.Logger.Errorw("MyLists: service error", "email", email, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MyListsView{
		Owner:       owner.Email,
		OwnedLists:  summaries(visible.Owned),
		SharedLists: summaries(visible.Shared),
	})
}

// pathParam возвращает декодированный сегмент пути. chi отдаёт сырой
// экранированный сегмент, если у URL есть RawPath (например, %40 вместо @).
func pathParam(r *http.Request, name string) (string, bool) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, true
	}
	unescaped, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return unescaped, true
}

// loadList читает {id} из пути; неизвестный или нечисловой id — 404.
func (h *ListHandler) loadList(w http.ResponseWriter, r *http.Request) (*model.List, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	l, err := h.ListService.GetList(r.Context(), id)
	if errors.Is(err, service.ErrListNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		h.Logger.Errorw("loadList: service error", "list_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return l, true
}

func (h *ListHandler) renderList(w http.ResponseWriter, r *http.Request, status int, l *model.List, form FormView, errMsg string) {
	sharees, err := h.ListService.Sharees(r.Context(), l)
	if err != nil {
		h.Logger.Errorw("renderList: resolve sharees", "list_id", l.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := newListPageView(l, sharees)
	page.Form = form
	page.Error = errMsg
	writeJSON(w, status, page)
}
