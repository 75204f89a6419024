package domain

import "errors"

// Domain errors.
var (
	ErrActivityNotFound       = errors.New("activity not found")
	ErrAlreadySignedUp        = errors.New("student is already signed up")
	ErrNotSignedUp            = errors.New("student is not signed up for this activity")
	ErrInvalidCredentials     = errors.New("invalid teacher credentials")
	ErrTeacherLoginRequired   = errors.New("teacher login is required for this action")
	ErrCredentialsUnavailable = errors.New("teacher credentials file is missing")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrActivityNotFound, "activity_not_found"},
	{ErrAlreadySignedUp, "already_signed_up"},
	{ErrNotSignedUp, "not_signed_up"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrTeacherLoginRequired, "teacher_login_required"},
	{ErrCredentialsUnavailable, "credentials_unavailable"},
}

// Code returns the stable code of the domain error wrapped in err, or "" when
// err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
