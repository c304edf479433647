package models

type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Login         string `json:"login"`
	Password      string `json:"password,omitempty"`
	PasswordHash  string `json:"-"`
	Height        *int   `json:"height"`
	StartWeight   *int   `json:"startWeight"`
	CurrentWeight *int   `json:"currentWeight"`
	Age           *int   `json:"age"`
	StartDate     *Date  `json:"startDate"`
}

// Sanitized returns a copy of the user safe to send back to clients.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
