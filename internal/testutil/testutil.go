package testutil

import (
	"time"

	"github.com/pkg/errors"
	"pgregory.net/rapid"
)

// github.com/pkg/errors の errors.Is に nil も扱えるようにしたもの
// 第一引数に gotErr
// 第二引数に wantErr が期待されている
func ErrorsIs(err error, target error) bool {
	// nil と nil の比較のため
	if err == nil || target == nil {
		return err == target
	}
	return errors.Is(err, target)
}

// 西暦 1000 年 〜 9000 年あたりのエポックミリ秒
func EpochMillis() *rapid.Generator[int64] {
	return rapid.Int64Range(-30_610_224_000_000, 221_845_392_000_000)
}

// 足し引きしても上の範囲から大きくはみ出さない程度の量
func Count() *rapid.Generator[int64] {
	return rapid.Int64Range(0, 100_000)
}

func Location() *rapid.Generator[*time.Location] {
	return rapid.SampledFrom([]*time.Location{
		time.UTC,
		time.FixedZone("Asia/Tokyo", 9*60*60),
		time.FixedZone("UTC-5", -5*60*60),
		time.FixedZone("UTC+5:30", 5*60*60+30*60),
	})
}
