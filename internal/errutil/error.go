package errutil

var (
	ErrTimeParse       = NewInternalError("time parse error")
	ErrLocationLoad    = NewInternalError("location load error")
	ErrInvalidArgument = NewInternalError("invalid argument")
	ErrConfig          = NewInternalError("config parse error")
	ErrScheduler       = NewInternalError("scheduler error")
)
