package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/session"
)

const adminSessionName = "admin-session"

// currentActor rebuilds the request's actor from the cookie session.
// The zero Actor means nobody is logged in.
func currentActor(store *sessions.CookieStore, r *http.Request) session.Actor {
	s, _ := store.Get(r, adminSessionName)

	id, _ := s.Values["user_id"].(int)
	username, _ := s.Values["username"].(string)
	role, _ := s.Values["role"].(string)
	fullName, _ := s.Values["full_name"].(string)
	email, _ := s.Values["email"].(string)

	return session.NewActor(id, username, email, fullName, role)
}

func saveActor(s *sessions.Session, a session.Actor) {
	s.Values["user_id"] = a.ID
	s.Values["username"] = a.Username
	s.Values["email"] = a.Email
	s.Values["full_name"] = a.FullName
	s.Values["role"] = a.Role
}
