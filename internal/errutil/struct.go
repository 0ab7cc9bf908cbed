package errutil

// errors.Is で比較できるよう comparable にしておく
type InternalError struct {
	msg string
}

func NewInternalError(msg string) InternalError {
	return InternalError{msg: msg}
}

func (e InternalError) Error() string {
	return e.msg
}
