package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/cart"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/pricing"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

const shopSessionName = "shop-session"

type CartHandler struct {
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// loadCart rebuilds the cart from the shopper's cookie session.
func loadCart(s *sessions.Session) *cart.Cart {
	if lines, ok := s.Values["cart"].([]cart.Line); ok {
		return cart.FromLines(lines)
	}
	return cart.New()
}

func saveCart(s *sessions.Session, c *cart.Cart) {
	s.Values["cart"] = c.Lines()
}

// displayCurrency reads the shopper's selected currency, defaulting to
// the base currency.
func displayCurrency(s *sessions.Session) string {
	if code, ok := s.Values["currency"].(string); ok && code != "" {
		return code
	}
	return pricing.BaseCurrency
}

func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	c := loadCart(session)
	code := displayCurrency(session)

	tmpl := h.Templates.Get("cart.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Lines":      c.Lines(),
		"GrandTotal": pricing.Format(pricing.Convert(c.GrandTotal(), code), code),
		"Currency":   code,
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	defer session.Save(r, w)

	itemID, err := strconv.Atoi(r.FormValue("item_id"))
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid item."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	item, err := h.Store.GetItemByID(itemID)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Item not found."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	c := loadCart(session)
	if err := c.Add(item); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Could not add item to cart."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	saveCart(session, c)

	session.AddFlash(FlashMessage{Type: "success", Message: item.Name + " added to cart."})
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	defer session.Save(r, w)

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	c := loadCart(session)
	if err := c.SetQuantity(productID, qty); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Quantity must be at least 1."})
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	saveCart(session, c)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	defer session.Save(r, w)

	productID, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	c := loadCart(session)
	if err := c.Remove(productID); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "That item is not in your cart."})
	}
	saveCart(session, c)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// SelectCurrency stores the display currency in the session. Unknown
// codes are kept as-is; pricing treats them as the base currency.
func (h *CartHandler) SelectCurrency(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	session.Values["currency"] = r.FormValue("currency")
	session.Save(r, w)

	redirect := r.Referer()
	if redirect == "" {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
