package moment

import (
	"time"

	"github.com/nleeper/goment"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/dateext/domain/model/instant"
	"github.com/sobadon/dateext/domain/repository"
)

type client struct {
	loc *time.Location
}

// loc が nil なら time.Local
func New(loc *time.Location) repository.Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &client{loc: loc}
}

func (c *client) FormatMillis(millis int64, pattern string) string {
	return Format(instant.FromEpochMillis(millis, c.loc), pattern)
}

// moment.js のパターンで i を文字列にする
// i の location のまま出力する
func Format(i instant.Instant, pattern string) string {
	g, err := goment.New(i.Time())
	if err != nil {
		// time.Time を渡している限り起きない
		log.Error().Err(err).Msg("goment new error")
		return ""
	}
	return g.Format(pattern)
}
