package session

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// Actor identifies who is driving the current request. It is a plain
// value built per request and passed explicitly to whatever needs it;
// there is no process-wide "current user". The zero value means logged
// out.
type Actor struct {
	ID       int
	Username string
	Email    string
	FullName string
	Role     string
}

func NewActor(id int, username, email, fullName, role string) Actor {
	return Actor{
		ID:       id,
		Username: username,
		Email:    email,
		FullName: fullName,
		Role:     role,
	}
}

func (a Actor) IsLoggedIn() bool {
	return a.ID > 0 && a.Username != ""
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}

// Clear resets the actor to logged out, mirroring logout.
func (a *Actor) Clear() {
	*a = Actor{}
}
