package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/order"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/pricing"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

type OrderHandler struct {
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func generateToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "fallback-token-" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	return hex.EncodeToString(b)
}

func (h *OrderHandler) CheckoutForm(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	c := loadCart(session)
	if c.Len() == 0 {
		session.AddFlash(FlashMessage{Type: "error", Message: "Your cart is empty."})
		session.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	code := displayCurrency(session)
	tmpl := h.Templates.Get("checkout.html")
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

func (h *OrderHandler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	defer session.Save(r, w)

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	address := r.FormValue("address")
	payment := r.FormValue("payment_method")
	currency := r.FormValue("currency")

	// Validation
	errors := make(map[string]string)
	if name == "" {
		errors["name"] = "Your name is required."
	}
	if email == "" {
		errors["email"] = "Email address is required."
	} else if !isValidEmail(email) {
		errors["email"] = "Please enter a valid email address."
	}
	if address == "" {
		errors["address"] = "Shipping address is required."
	}
	if payment == "" {
		payment = "cash_on_delivery"
	}

	if len(errors) > 0 {
		for _, msg := range errors {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	c := loadCart(session)
	o, err := order.Assemble(c, order.CustomerInfo{Name: name, Email: email, Address: address}, payment, currency)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Your cart is empty."})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.Store.CreateOrder(o); err != nil {
		slog.Error("Failed to create order", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to place order. Please try again."})
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	token := generateToken()
	if err := h.Store.UpdateOrderToken(o.ID, token); err != nil {
		slog.Error("Failed to attach magic token", "order_id", o.ID, "error", err)
	}

	// MOCK EMAIL SENDING
	slog.Info("==========================================")
	slog.Info("📧 EMAIL SENT TO: " + email)
	slog.Info("Subject: Order Confirmation")
	slog.Info("Order Reference: " + o.OrderRef)
	slog.Info("Your Magic Link: /order/status/" + token)
	slog.Info("==========================================")

	c.Clear()
	saveCart(session, c)

	session.AddFlash(FlashMessage{Type: "success", Message: "Order placed successfully! Check your email for details."})
	http.Redirect(w, r, "/order/status/"+token, http.StatusSeeOther)
}

// Basic email validation regex
var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
