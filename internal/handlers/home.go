package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/pricing"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

type HomeHandler struct {
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.GetPublicItems()
	if err != nil {
		http.Error(w, "Error fetching items", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, shopSessionName)
	code := displayCurrency(session)
	for i := range items {
		items[i].SetDisplayCurrency(code)
	}

	actor := currentActor(h.SessionStore, r)

	data := map[string]interface{}{
		"Items":      items,
		"Currencies": pricing.Supported(),
		"Currency":   code,
		"Flashes":    GetFlash(session),
		"IsAdmin":    actor.IsAdmin(),
		"CsrfField":  csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *HomeHandler) ItemDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid Item ID", http.StatusBadRequest)
		return
	}

	item, err := h.Store.GetItemByID(id)
	if err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	session, _ := h.SessionStore.Get(r, shopSessionName)
	item.SetDisplayCurrency(displayCurrency(session))

	tmpl := h.Templates.Get("item.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Item":      item,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}
