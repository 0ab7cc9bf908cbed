package op

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/sobadon/dateext/infrastructures/clock"
	"github.com/sobadon/dateext/infrastructures/moment"
	"github.com/sobadon/dateext/internal/errutil"
	"github.com/sobadon/dateext/internal/logutil"
	"github.com/sobadon/dateext/internal/timeutil"
	"github.com/sobadon/dateext/usecase"
)

type config struct {
	TZ         string        `env:"TZ" envDefault:"Local"`
	Separator  string        `env:"SEPARATOR" envDefault:" "`
	Pattern    string        `env:"PATTERN" envDefault:"YYYY-M-D H:m:s"`
	WatchEvery time.Duration `env:"WATCH_EVERY" envDefault:"1s"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
}

// 各コマンド共通の依存
type deps struct {
	config   config
	loc      *time.Location
	dateUtil *usecase.DateUtil
}

// env.Parse の OnSet で受け取った値
// ログレベルが決まる前に呼ばれるので、SetLevel の後でまとめて出す
type configEntry struct {
	tag       string
	value     interface{}
	isDefault bool
}

func loadConfig() (config, []configEntry, error) {
	var cfg config
	var entries []configEntry
	err := env.Parse(&cfg, env.Options{
		Prefix: "DATEEXT_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			entries = append(entries, configEntry{tag: tag, value: value, isDefault: isDefault})
		},
	})
	if err != nil {
		return config{}, nil, errors.Wrap(errutil.ErrConfig, err.Error())
	}
	return cfg, entries, nil
}

func newDeps() (*deps, error) {
	cfg, entries, err := loadConfig()
	if err != nil {
		return nil, err
	}

	err = logutil.SetLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		log.Debug().Msgf("Set %s to %v (default? %v)", e.tag, e.value, e.isDefault)
	}

	loc, err := timeutil.LoadLocation(cfg.TZ)
	if err != nil {
		return nil, err
	}

	return &deps{
		config:   cfg,
		loc:      loc,
		dateUtil: usecase.NewDateUtil(moment.New(loc), clock.New(loc), loc),
	}, nil
}
