package date

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/sobadon/dateext/domain/model/instant"
)

// 年月日
type Date time.Time

// today の 0 時
func NewFromToday(today time.Time) Date {
	return Date(now.With(today).BeginningOfDay())
}

// today が属する月の 1 日
func NewFirstOfMonth(today time.Time) Date {
	return Date(now.With(today).BeginningOfMonth())
}

// その日の 00:00:00.000
func (d Date) Instant() instant.Instant {
	return instant.New(time.Time(d))
}

// YYYY-MM-DD
func (d Date) String() string {
	return d.Instant().FormatDate()
}
