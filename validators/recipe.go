package validators

import "errors"

var (
	ErrTitleEmpty      = errors.New("title can't be empty")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrPriceOutOfRange = errors.New("price must be between 0 and 999.99")
	ErrTimeNegative    = errors.New("time_minutes can't be negative")
)

func TitleValidator(t string) error {
	if t == "" {
		return ErrTitleEmpty
	}

	if len(t) > 255 {
		return ErrTitleTooLong
	}

	return nil
}

// PriceValidator enforces the decimal(5,2) column bounds before the
// value ever reaches the database.
func PriceValidator(p float64) error {
	if p < 0 || p > 999.99 {
		return ErrPriceOutOfRange
	}

	return nil
}

func TimeValidator(m int) error {
	if m < 0 {
		return ErrTimeNegative
	}

	return nil
}
