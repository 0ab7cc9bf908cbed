package op

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sobadon/dateext/domain/model/date"
	"github.com/sobadon/dateext/domain/model/instant"
	"github.com/sobadon/dateext/internal/errutil"
	"github.com/sobadon/dateext/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Commands() []*cobra.Command {
	return []*cobra.Command{
		nowCommand(),
		parseCommand(),
		millisCommand(),
		firstDayCommand(),
		shiftCommand(),
		boundaryCommand(),
		watchCommand(),
	}
}

func nowCommand() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "print the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.dateUtil.Now().FormatDateTime(d.separator(cmd, sep)))
			return nil
		},
	}
	cmd.Flags().StringVar(&sep, "sep", "", "separator between date and time (default $DATEEXT_SEPARATOR)")
	return cmd
}

func parseCommand() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "parse <date>",
		Short: "parse a dash separated date such as 2024-01-31",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			i, err := d.dateUtil.ParseDate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i.FormatDateTime(d.separator(cmd, sep)))
			return nil
		},
	}
	cmd.Flags().StringVar(&sep, "sep", "", "separator between date and time (default $DATEEXT_SEPARATOR)")
	return cmd
}

func millisCommand() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "millis <epoch-millis>",
		Short: "format epoch milliseconds with a moment style pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			millis, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(errutil.ErrInvalidArgument, err.Error())
			}

			if !cmd.Flags().Changed("pattern") {
				pattern = d.config.Pattern
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.dateUtil.FormatMillisPattern(millis, pattern))
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "", "moment style pattern (default $DATEEXT_PATTERN)")
	return cmd
}

func firstDayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "first-day",
		Short: "print the first day of the current month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.dateUtil.FirstDayOfMonth().FormatDateTime(d.config.Separator))
			return nil
		},
	}
	return cmd
}

func shiftCommand() *cobra.Command {
	var days, hours, minutes, millis int64
	cmd := &cobra.Command{
		Use:   "shift <date|now|today>",
		Short: "shift a date by days, hours, minutes and milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			i, err := d.resolve(args[0])
			if err != nil {
				return err
			}

			// 負の値は Minus* と同じ
			i = i.PlusDays(days).PlusHours(hours).PlusMinutes(minutes).PlusMillis(millis)
			log.Debug().Int64("epoch_millis", i.EpochMillis()).Msg("shifted")

			fmt.Fprintln(cmd.OutOrStdout(), i.FormatDateTime(d.config.Separator))
			return nil
		},
	}
	cmd.Flags().Int64Var(&days, "days", 0, "days to add (negative to subtract)")
	cmd.Flags().Int64Var(&hours, "hours", 0, "hours to add (negative to subtract)")
	cmd.Flags().Int64Var(&minutes, "minutes", 0, "minutes to add (negative to subtract)")
	cmd.Flags().Int64Var(&millis, "millis", 0, "milliseconds to add (negative to subtract)")
	return cmd
}

func boundaryCommand() *cobra.Command {
	var end bool
	cmd := &cobra.Command{
		Use:   "boundary <date|now|today>",
		Short: "print the start (or end with --max) of the day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			i, err := d.resolve(args[0])
			if err != nil {
				return err
			}

			if end {
				i.SetMaxTime()
			} else {
				i.SetMinTime()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s.%03d\n", i.FormatDateTime(d.config.Separator), i.Millisecond())
			return nil
		},
	}
	cmd.Flags().BoolVar(&end, "max", false, "end of the day instead of the start")
	return cmd
}

// "now" なら現在時刻、"today" なら今日の 0 時、それ以外は ParseDate
func (d *deps) resolve(arg string) (instant.Instant, error) {
	switch arg {
	case "now":
		return d.dateUtil.Now(), nil
	case "today":
		today := date.NewFromToday(d.dateUtil.Now().Time())
		log.Debug().Stringer("date", today).Msg("resolved today")
		return today.Instant(), nil
	}
	return d.dateUtil.ParseDate(arg)
}

// --sep が指定されていなければ設定値
func (d *deps) separator(cmd *cobra.Command, sep string) string {
	if cmd.Flags().Changed("sep") {
		return sep
	}
	return d.config.Separator
}
