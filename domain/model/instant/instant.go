package instant

import (
	"strconv"
	"time"

	"github.com/duke-git/lancet/v2/datetime"
	"github.com/sobadon/dateext/internal/timeutil"
)

// ミリ秒精度の時刻
// ローカルのカレンダー表現は保持している location で解釈する
//
// 加減算・フォーマットは値レシーバで、レシーバを変更しない
// SetMinTime / SetMaxTime だけはポインタレシーバで、レシーバ自体を書き換える
type Instant struct {
	t     time.Time
	valid bool
}

// ミリ秒未満は切り捨てる
func New(t time.Time) Instant {
	return Instant{t: t.Truncate(time.Millisecond), valid: true}
}

// loc が nil なら time.Local
func FromEpochMillis(millis int64, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	return Instant{t: time.UnixMilli(millis).In(loc), valid: true}
}

func (i Instant) EpochMillis() int64 {
	return i.t.UnixMilli()
}

func (i Instant) Time() time.Time {
	return i.t
}

func (i Instant) Location() *time.Location {
	return i.t.Location()
}

// New / FromEpochMillis を通っていないゼロ値（パース失敗時など）は false
// 0001-01-01 00:00:00 UTC も New から作れば true
func (i Instant) IsValid() bool {
	return i.valid
}

// エポックミリ秒で比較する
func (i Instant) Equal(other Instant) bool {
	return i.EpochMillis() == other.EpochMillis()
}

func (i Instant) Year() int {
	return i.t.Year()
}

func (i Instant) Month() time.Month {
	return i.t.Month()
}

func (i Instant) Day() int {
	return i.t.Day()
}

func (i Instant) Hour() int {
	return i.t.Hour()
}

func (i Instant) Minute() int {
	return i.t.Minute()
}

func (i Instant) Second() int {
	return i.t.Second()
}

func (i Instant) Millisecond() int {
	return i.t.Nanosecond() / int(time.Millisecond)
}

func (i Instant) MinusDays(days int64) Instant {
	return i.MinusMillis(timeutil.OneDay * days)
}

func (i Instant) PlusDays(days int64) Instant {
	return i.PlusMillis(timeutil.OneDay * days)
}

func (i Instant) MinusHours(hours int64) Instant {
	return i.MinusMillis(timeutil.OneHour * hours)
}

func (i Instant) PlusHours(hours int64) Instant {
	return i.PlusMillis(timeutil.OneHour * hours)
}

func (i Instant) MinusMinutes(minutes int64) Instant {
	return i.MinusMillis(timeutil.OneMinute * minutes)
}

func (i Instant) PlusMinutes(minutes int64) Instant {
	return i.PlusMillis(timeutil.OneMinute * minutes)
}

// time.Duration を経由すると ±292 年で溢れるので、エポックミリ秒のまま計算する
func (i Instant) MinusMillis(millis int64) Instant {
	return FromEpochMillis(i.EpochMillis()-millis, i.Location())
}

func (i Instant) PlusMillis(millis int64) Instant {
	return FromEpochMillis(i.EpochMillis()+millis, i.Location())
}

// その日の 00:00:00.000
func (i Instant) StartOfDay() Instant {
	return New(datetime.BeginOfDay(i.t))
}

// その日の 23:59:59.999
func (i Instant) EndOfDay() Instant {
	return New(datetime.EndOfDay(i.t))
}

// レシーバをその日の 00:00:00.000 に書き換えて、レシーバ自身を返す
// 同じ *Instant を持っている呼び出し元からも変更が見える
func (i *Instant) SetMinTime() *Instant {
	*i = i.StartOfDay()
	return i
}

// レシーバをその日の 23:59:59.999 に書き換えて、レシーバ自身を返す
func (i *Instant) SetMaxTime() *Instant {
	*i = i.EndOfDay()
	return i
}

// YYYY-MM-DD
func (i Instant) FormatDate() string {
	return strconv.Itoa(i.Year()) + "-" + timeutil.AddZero(int(i.Month())) + "-" + timeutil.AddZero(i.Day())
}

// HH:MM:SS
func (i Instant) FormatTime() string {
	return timeutil.AddZero(i.Hour()) + ":" + timeutil.AddZero(i.Minute()) + ":" + timeutil.AddZero(i.Second())
}

// 日付と時刻の間は sep（省略時は半角スペース）
func (i Instant) FormatDateTime(sep ...string) string {
	split := " "
	if len(sep) > 0 {
		split = sep[0]
	}
	return i.FormatDate() + split + i.FormatTime()
}

func (i Instant) String() string {
	return i.FormatDateTime()
}
