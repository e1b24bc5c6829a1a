package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
)

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	orders, err := h.Store.GetAllOrders(limit, offset)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}

	totalOrders, err := h.Store.GetTotalOrdersCount()
	if err != nil {
		http.Error(w, "Error fetching total order count", http.StatusInternalServerError)
		return
	}

	totalPages := (totalOrders + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	tmpl := h.Templates.Get("admin_orders.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	s, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"Orders":      orders,
		"CsrfField":   csrf.TemplateField(r),
		"Flashes":     GetFlash(s),
		"CurrentPage": page,
		"TotalPages":  totalPages,
		"Limit":       limit,
	}
	s.Save(r, w)
	tmpl.Execute(w, data)
}

// UpdateOrderStatus appends a history entry. The order's current status
// follows automatically since it is derived from the latest entry.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	status := r.FormValue("status")
	note := r.FormValue("note")
	if status == "" {
		http.Error(w, "Status is required", http.StatusBadRequest)
		return
	}

	if err := h.Store.AppendOrderStatus(id, status, note); err != nil {
		http.Error(w, "Error updating status", http.StatusInternalServerError)
		return
	}

	s, _ := h.SessionStore.Get(r, adminSessionName)
	s.AddFlash(FlashMessage{Type: "success", Message: "Order updated!"})
	s.Save(r, w)
	http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
}

// OrderHistory shows the full status trail for one order.
func (h *AdminHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	o, err := h.Store.GetOrderByID(id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	history, err := h.Store.GetStatusHistory(id)
	if err != nil {
		http.Error(w, "Error fetching history", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_order_history.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	s, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"Order":     o,
		"History":   history,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(s),
	}
	s.Save(r, w)
	tmpl.Execute(w, data)
}
