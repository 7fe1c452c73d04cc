package structs

// LoginBody login request body
type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccessToken token issued by the login endpoint
type AccessToken struct {
	Token string `json:"token"`
}
