package clock

import (
	"time"

	"github.com/sobadon/dateext/domain/repository"
)

type client struct {
	loc *time.Location
}

// loc が nil なら time.Local
func New(loc *time.Location) repository.Clock {
	if loc == nil {
		loc = time.Local
	}
	return &client{loc: loc}
}

func (c *client) Now() time.Time {
	return time.Now().In(c.loc)
}
