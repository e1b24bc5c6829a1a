package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/message"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

type MessageHandler struct {
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *MessageHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("contact.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, shopSessionName)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *MessageHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, shopSessionName)
	defer session.Save(r, w)

	name := r.FormValue("name")
	email := r.FormValue("email")
	subject := r.FormValue("subject")
	body := r.FormValue("body")

	if name == "" || body == "" || !isValidEmail(email) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Please fill in your name, a valid email and a message."})
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	m := message.New(name, email, subject, body)
	if err := h.Store.CreateMessage(m); err != nil {
		slog.Error("Failed to save message", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to send your message. Please try again."})
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Message sent! We'll get back to you soon."})
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

// Admin inbox

func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Store.ListMessages()
	if err != nil {
		http.Error(w, "Error fetching messages", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_messages.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"Messages":  msgs,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ViewMessage marks an unread message as read on open.
func (h *MessageHandler) ViewMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	m, err := h.Store.GetMessageByID(id)
	if err != nil {
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	}

	if m.Status == message.StatusUnread {
		m.MarkRead()
		if err := h.Store.SaveMessageStatus(m); err != nil {
			slog.Error("Failed to mark message read", "id", id, "error", err)
		}
	}

	tmpl := h.Templates.Get("admin_message.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, adminSessionName)
	data := map[string]interface{}{
		"Message":   m,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *MessageHandler) ReplyMessage(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, adminSessionName)
	defer session.Save(r, w)

	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	reply := r.FormValue("reply")
	if reply == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Reply text is required."})
		http.Redirect(w, r, "/admin/messages", http.StatusSeeOther)
		return
	}

	m, err := h.Store.GetMessageByID(id)
	if err != nil {
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	}

	m.Reply(reply)
	if err := h.Store.SaveMessageStatus(m); err != nil {
		slog.Error("Failed to save reply", "id", id, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to save reply."})
		http.Redirect(w, r, "/admin/messages", http.StatusSeeOther)
		return
	}

	// MOCK EMAIL
	slog.Info("==========================================")
	slog.Info("📧 EMAIL SENT TO: " + m.Email)
	slog.Info("Subject: Re: " + m.Subject)
	slog.Info(reply)
	slog.Info("==========================================")

	session.AddFlash(FlashMessage{Type: "success", Message: "Reply sent."})
	http.Redirect(w, r, "/admin/messages", http.StatusSeeOther)
}
