package domain

const (
	MailCreateUser    = "create_user"
	MailResetPassword = "reset_password"
)

// MailQueue is the RabbitMQ queue the mail worker consumes.
const MailQueue = "email_queue"

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
}

type ResetPasswordMailData struct {
	DisplayName string `json:"displayName"`
	OTP         string `json:"otp"`
	Expiration  int    `json:"expiration"`
}
