package entities

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Guests   string `json:"guests"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	Message  string `json:"message"`
}
