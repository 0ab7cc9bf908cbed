//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import "time"

// moment 風のパターンでエポックミリ秒を文字列にする
type Formatter interface {
	// pattern の例: "YYYY-M-D H:m:s"
	FormatMillis(millis int64, pattern string) string
}

type Clock interface {
	Now() time.Time
}
