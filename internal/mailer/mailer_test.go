package mailer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func body(t *testing.T, msg domain.MailMessage) []byte {
	t.Helper()

	b, err := json.Marshal(msg)
	require.NoError(t, err)
	return b
}

func TestCompose_ResetPassword(t *testing.T) {
	m, err := Compose(body(t, domain.MailMessage{
		Type: domain.MailResetPassword,
		To:   "operator@test.com",
		Data: domain.ResetPasswordMailData{DisplayName: "Thomas", OTP: "123456", Expiration: 15},
	}), "noreply@bay.test")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "operator@test.com")
	assert.Contains(t, out, "Reset your password")
	assert.Contains(t, out, "123456")
}

func TestCompose_CreateUser(t *testing.T) {
	m, err := Compose(body(t, domain.MailMessage{
		Type: domain.MailCreateUser,
		To:   "new@test.com",
		Data: domain.CreateUserMailData{DisplayName: "Emma", Email: "new@test.com", Password: "s3cret", Role: domain.RoleOperator},
	}), "noreply@bay.test")
	require.NoError(t, err)

	assert.Equal(t, []string{"The Bay Services - Your account"}, m.GetGenHeader("Subject"))
}

func TestCompose_Rejects(t *testing.T) {
	_, err := Compose([]byte("not json"), "noreply@bay.test")
	assert.Error(t, err)

	_, err = Compose(body(t, domain.MailMessage{Type: "change_email", To: "a@test.com"}), "noreply@bay.test")
	assert.ErrorIs(t, err, ErrUnknownMailType)

	_, err = Compose(body(t, domain.MailMessage{Type: domain.MailResetPassword, To: "not an address", Data: domain.ResetPasswordMailData{}}), "noreply@bay.test")
	assert.Error(t, err)
}
