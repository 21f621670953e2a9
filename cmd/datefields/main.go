// datefields resolves an instant, given as a millisecond timestamp, as
// calendar fields, or as the current time, through the datetime engine and
// prints every derived field.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/davejbax/go-datetime"
)

var (
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Width(12)
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8FAFC")).Bold(true)
	styleGroup = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
)

var flags struct {
	timestamp int64

	year       int
	ordinalDay int
	month      int
	monthDay   int

	isoYear int
	isoWeek int
	weekDay int

	hour        int
	minute      int
	second      int
	millisecond int

	offset float64
}

func main() {
	cmd := &cobra.Command{
		Use:   "datefields",
		Short: "Resolve a timestamp or calendar fields into all datetime fields",
		Long: `datefields resolves an instant and prints its Gregorian, ISO week-calendar
and time-of-day fields. The instant is given either as --timestamp, as a set
of calendar field flags (a Gregorian year or an ISO year at minimum), or not
at all, in which case the current time is used.`,
		Args: cobra.NoArgs,
		RunE: run,

		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.Int64Var(&flags.timestamp, "timestamp", 0, "UTC timestamp in milliseconds")
	f.IntVar(&flags.year, "year", 0, "Gregorian year")
	f.IntVar(&flags.ordinalDay, "ordinal-day", 0, "day of year (1-366)")
	f.IntVar(&flags.month, "month", 0, "month (1-12)")
	f.IntVar(&flags.monthDay, "month-day", 0, "day of month (1-31)")
	f.IntVar(&flags.isoYear, "iso-year", 0, "ISO week-calendar year")
	f.IntVar(&flags.isoWeek, "iso-week", 0, "ISO week (1-53)")
	f.IntVar(&flags.weekDay, "week-day", 0, "ISO weekday (1=Monday .. 7=Sunday)")
	f.IntVar(&flags.hour, "hour", 0, "hour of day (0-23)")
	f.IntVar(&flags.minute, "minute", 0, "minute (0-59)")
	f.IntVar(&flags.second, "second", 0, "second (0-59)")
	f.IntVar(&flags.millisecond, "millisecond", 0, "millisecond (0-999)")
	f.Float64Var(&flags.offset, "offset", 0, "zone offset in hours (default: host offset)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	d, err := resolve(cmd)
	if err != nil {
		return fmt.Errorf("could not resolve instant: %w", err)
	}

	fmt.Println(render(d))
	return nil
}

func resolve(cmd *cobra.Command) (*datetime.DateTime, error) {
	changed := cmd.Flags().Changed

	var opts []datetime.Option
	if changed("offset") {
		opts = append(opts, datetime.WithTimeZoneOffset(flags.offset))
	}

	switch {
	case changed("timestamp"):
		return datetime.FromTimestamp(flags.timestamp, opts...)

	case changed("year") || changed("iso-year"):
		p := datetime.Parts{
			Hour24:      datetime.Int(flags.hour),
			Minute:      datetime.Int(flags.minute),
			Second:      datetime.Int(flags.second),
			Millisecond: datetime.Int(flags.millisecond),
		}
		if changed("year") {
			p.Year = datetime.Int(flags.year)
		}
		if changed("ordinal-day") {
			p.OrdinalDay = datetime.Int(flags.ordinalDay)
		}
		if changed("month") {
			p.Month = datetime.Int(flags.month)
		}
		if changed("month-day") {
			p.MonthDay = datetime.Int(flags.monthDay)
		}
		if changed("iso-year") {
			p.ISOYear = datetime.Int(flags.isoYear)
		}
		if changed("iso-week") {
			p.ISOWeek = datetime.Int(flags.isoWeek)
		}
		if changed("week-day") {
			p.WeekDay = datetime.Int(flags.weekDay)
		}
		if changed("offset") {
			p.TimeZoneOffset = datetime.Float(flags.offset)
		}
		return datetime.FromParts(p)

	default:
		return datetime.Now(opts...)
	}
}

func render(d *datetime.DateTime) string {
	var b strings.Builder

	group := func(name string) {
		b.WriteString(styleGroup.Render(name))
		b.WriteByte('\n')
	}
	row := func(label string, format string, args ...any) {
		b.WriteString(styleLabel.Render(label))
		b.WriteString(styleValue.Render(fmt.Sprintf(format, args...)))
		b.WriteByte('\n')
	}

	group("instant")
	row("timestamp", "%d", d.Timestamp())
	row("offset", "%+.2fh", d.TimeZoneOffset())

	group("gregorian")
	row("year", "%d (leap: %t)", d.Year(), d.LeapYear())
	row("month", "%d", d.Month())
	row("monthDay", "%d", d.MonthDay())
	row("ordinalDay", "%d", d.OrdinalDay())

	group("iso week")
	row("isoYear", "%d (long: %t)", d.ISOYear(), d.LongISOYear())
	row("isoWeek", "%d", d.ISOWeek())
	row("weekDay", "%d", d.WeekDay())

	group("time")
	row("hour24", "%d", d.Hour24())
	row("hour12", "%d (meridiem %d)", d.Hour12(), d.Meridiem())
	row("minute", "%d", d.Minute())
	row("second", "%d", d.Second())
	row("millisecond", "%d", d.Millisecond())

	return b.String()
}
