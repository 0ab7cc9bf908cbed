package logutil

import (
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/dateext/internal/errutil"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	zerolog.CallerMarshalFunc = func(file string, line int) string {
		filename := filepath.Base(file)
		return filename + ":" + strconv.Itoa(line)
	}
}

// 出力先は stderr
// stdout は各コマンドの結果のために空けておく
func NewLogger() zerolog.Logger {
	logger := log.With().Caller().Logger()

	return logger
}

// "debug", "info", "warn" など
func SetLevel(level string) error {
	lv, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrap(errutil.ErrConfig, err.Error())
	}
	zerolog.SetGlobalLevel(lv)
	return nil
}
