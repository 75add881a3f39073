package account_test

import (
	"testing"

	"github.com/gymstack/gym-admin/account"
	"github.com/stretchr/testify/require"
)

func validForm() account.RegisterForm {
	return account.RegisterForm{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "Password1",
	}
}

func TestRegisterFormValidate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		require.NoError(t, validForm().Validate())
	})

	t.Run("missing first name", func(t *testing.T) {
		f := validForm()
		f.FirstName = "  "
		err := f.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "first name")
	})

	t.Run("missing email", func(t *testing.T) {
		f := validForm()
		f.Email = ""
		require.Error(t, f.Validate())
	})

	t.Run("malformed email", func(t *testing.T) {
		f := validForm()
		f.Email = "not-an-email"
		err := f.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "not valid")
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, account.ValidatePasswordStrength("Password1"))
	})

	t.Run("too short", func(t *testing.T) {
		err := account.ValidatePasswordStrength("Pw1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("no uppercase", func(t *testing.T) {
		require.Error(t, account.ValidatePasswordStrength("password1"))
	})

	t.Run("no lowercase", func(t *testing.T) {
		require.Error(t, account.ValidatePasswordStrength("PASSWORD1"))
	})

	t.Run("no number", func(t *testing.T) {
		require.Error(t, account.ValidatePasswordStrength("Passwords"))
	})
}
