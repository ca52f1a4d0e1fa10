package user

// User is the active session profile, set on login or registration and
// cleared on logout. At most one user is active at a time.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
