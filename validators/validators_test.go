package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("user@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "User@example.com", NormalizeEmail("User@EXAMPLE.Com"))
	assert.Equal(t, "plain", NormalizeEmail("plain"))
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("12345"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("1234"), ErrPasswordTooShort)
}

func TestPriceValidator(t *testing.T) {
	assert.NoError(t, PriceValidator(0))
	assert.NoError(t, PriceValidator(999.99))
	assert.ErrorIs(t, PriceValidator(-0.01), ErrPriceOutOfRange)
	assert.ErrorIs(t, PriceValidator(1000), ErrPriceOutOfRange)
}

func TestTitleValidator(t *testing.T) {
	assert.NoError(t, TitleValidator("Pancakes"))
	assert.ErrorIs(t, TitleValidator(""), ErrTitleEmpty)
}

func TestTimeValidator(t *testing.T) {
	assert.NoError(t, TimeValidator(0))
	assert.ErrorIs(t, TimeValidator(-1), ErrTimeNegative)
}
