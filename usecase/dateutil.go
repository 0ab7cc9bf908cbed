package usecase

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/dateext/domain/model/date"
	"github.com/sobadon/dateext/domain/model/instant"
	"github.com/sobadon/dateext/domain/repository"
	"github.com/sobadon/dateext/internal/errutil"
)

// FormatMillis のデフォルトパターン
// 0 埋めしない
const MillisPattern = "YYYY-M-D H:m:s"

// "-" を "/" に置き換えたあとで試すレイアウト
// 上から順に試す
var parseLayouts = []string{
	"2006/1/2 15:4:5.000",
	"2006/1/2 15:4:5",
	"2006/1/2 15:4",
	"2006/1/2",
}

type DateUtil struct {
	formatter repository.Formatter
	clock     repository.Clock
	loc       *time.Location
}

// loc が nil なら time.Local
func NewDateUtil(formatter repository.Formatter, clock repository.Clock, loc *time.Location) *DateUtil {
	if loc == nil {
		loc = time.Local
	}
	return &DateUtil{
		formatter: formatter,
		clock:     clock,
		loc:       loc,
	}
}

// "2024-01-31" のような文字列を loc の時刻としてパースする
// パースできなければゼロ値（IsValid() == false）と errutil.ErrTimeParse を返す
func (u *DateUtil) ParseDate(s string) (instant.Instant, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(s, "-", "/"))

	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, normalized, u.loc)
		if err == nil {
			return instant.New(t), nil
		}
	}
	return instant.Instant{}, errors.Wrapf(errutil.ErrTimeParse, "unrecognized date %q", s)
}

func (u *DateUtil) FormatMillis(millis int64) string {
	return u.formatter.FormatMillis(millis, MillisPattern)
}

func (u *DateUtil) FormatMillisPattern(millis int64, pattern string) string {
	return u.formatter.FormatMillis(millis, pattern)
}

// 今月 1 日の 00:00:00.000
func (u *DateUtil) FirstDayOfMonth() instant.Instant {
	first := date.NewFirstOfMonth(u.clock.Now().In(u.loc)).Instant()
	return *first.SetMinTime()
}

func (u *DateUtil) Now() instant.Instant {
	return instant.New(u.clock.Now().In(u.loc))
}
