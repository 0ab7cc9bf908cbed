package op

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/dateext/internal/errutil"
	"github.com/sobadon/dateext/internal/logutil"
	"github.com/sobadon/dateext/usecase"
	"github.com/spf13/cobra"
)

func watchCommand() *cobra.Command {
	var every time.Duration
	var count int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "print the current date and time periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("every") {
				every = d.config.WatchEvery
			}
			if every <= 0 {
				return errors.Wrap(errutil.ErrInvalidArgument, "--every must be positive")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return watch(ctx, d, cmd.OutOrStdout(), every, count)
		},
	}
	cmd.Flags().DurationVar(&every, "every", 0, "interval (default $DATEEXT_WATCH_EVERY)")
	cmd.Flags().IntVar(&count, "count", 0, "stop after printing this many times (0 = until interrupted)")
	return cmd
}

func watch(ctx context.Context, d *deps, out io.Writer, every time.Duration, count int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scheduler := gocron.NewScheduler(d.loc)
	scheduler.SingletonModeAll()

	var mu sync.Mutex
	var printed int64
	jobPrint := func(ctx context.Context, dateUtil *usecase.DateUtil, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "watch").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Debug().Msg("job start")

		n := atomic.AddInt64(&printed, 1)
		if count > 0 && n > int64(count) {
			return
		}

		mu.Lock()
		fmt.Fprintln(out, dateUtil.Now().FormatDateTime(d.config.Separator))
		mu.Unlock()

		if count > 0 && n == int64(count) {
			cancel()
		}
	}
	_, err := scheduler.Every(every).DoWithJobDetails(jobPrint, ctx, d.dateUtil)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}

	scheduler.StartAsync()
	<-ctx.Done()
	scheduler.Stop()
	log.Info().Msg("watch stopped")

	return nil
}
