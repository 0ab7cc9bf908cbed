package timeutil

import (
	"strconv"
	"time"
	// DATEEXT_TZ で IANA の名前を使えるよう、tzdata の無い環境向けに埋め込んでおく
	_ "time/tzdata"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/pkg/errors"
	"github.com/sobadon/dateext/internal/errutil"
)

// ミリ秒単位
const (
	OneMinute int64 = 1000 * 60
	OneHour         = OneMinute * 60
	OneDay          = OneHour * 24
)

func LocationJST() *time.Location {
	return time.FixedZone("Asia/Tokyo", 9*60*60)
}

// name が空 or "Local" なら time.Local
// "JST" は LocationJST
func LoadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return time.Local, nil
	case "JST":
		return LocationJST(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrLocationLoad, err.Error())
	}
	return loc, nil
}

// 2 桁になるよう 0 埋めする
// 5 -> "05", 13 -> "13"
func AddZero(n int) string {
	return strutil.PadStart(strconv.Itoa(n), 2, "0")
}
