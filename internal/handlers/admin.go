package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/session"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

type AdminHandler struct {
	Store        *store.Store
	SessionStore *sessions.CookieStore
	Templates    *TemplateCache
}

func (h *AdminHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("login.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	s, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(s),
	}
	s.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	s, _ := h.SessionStore.Get(r, adminSessionName)

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.Store.GetUserByUsername(username)
	if err != nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Internal Server Error"})
		s.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if user == nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Invalid username or password"})
		s.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.AddFlash(FlashMessage{Type: "error", Message: "Invalid username or password"})
		s.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	actor := session.NewActor(user.ID, user.Username, user.Email, user.FullName, user.Role)
	saveActor(s, actor)
	s.Options.Path = "/"
	s.AddFlash(FlashMessage{Type: "success", Message: "Welcome, " + user.Username + "!"})

	if err := s.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	slog.Info("Login successful", "user_id", user.ID, "role", user.Role)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, _ := h.SessionStore.Get(r, adminSessionName)
	saveActor(s, session.Actor{})
	s.Options.MaxAge = -1 // Expire immediately
	s.AddFlash(FlashMessage{Type: "success", Message: "Logged out successfully!"})
	s.Save(r, w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// AuthMiddleware lets only logged-in admins through.
func (h *AdminHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := currentActor(h.SessionStore, r)
		if !actor.IsLoggedIn() || !actor.IsAdmin() {
			slog.Info("Blocked unauthenticated admin access", "path", r.URL.Path)
			s, _ := h.SessionStore.Get(r, adminSessionName)
			s.AddFlash(FlashMessage{Type: "error", Message: "You must be logged in to access this page."})
			s.Save(r, w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.GetDashboardStats()
	if err != nil {
		http.Error(w, "Error fetching stats", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	s, _ := h.SessionStore.Get(r, adminSessionName)
	actor := currentActor(h.SessionStore, r)
	data := map[string]interface{}{
		"Stats":   stats,
		"Actor":   actor,
		"Flashes": GetFlash(s),
	}
	s.Save(r, w)
	tmpl.Execute(w, data)
}
