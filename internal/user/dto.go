package user

type RegisterDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginDTO struct {
	Code string `json:"code"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email"`
}

type ResetPasswordDTO struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// AuthResponse is returned by every successful login path. CookieMaxAge is
// consumed by the handler when setting the session cookie.
type AuthResponse struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture,omitempty"`
	Role         string  `json:"role"`
	IsGuest      bool    `json:"is_guest"`
	SessionToken string  `json:"session_token"`
	CookieMaxAge int     `json:"-"`
}
