package cmd

import (
	"fmt"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	database "alisto_backend/internals/databases"
	infoModel "alisto_backend/internals/features/information/model"
	infoService "alisto_backend/internals/features/information/service"
	helper "alisto_backend/internals/helpers"
	"alisto_backend/internals/helpers/dbtime"
)

const (
	dateFlag   = "date"
	periodFlag = "period"
)

var statsFlags = map[string]cobraflags.Flag{
	dateFlag: &cobraflags.StringFlag{
		Name:  dateFlag,
		Value: "",
		Usage: "Day to snapshot (YYYY-MM-DD), defaults to yesterday",
	},
	periodFlag: &cobraflags.StringFlag{
		Name:  periodFlag,
		Value: string(infoModel.PeriodDaily),
		Usage: "Service statistics period: Daily, Weekly, Monthly or Yearly",
	},
}

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Snapshot app usage and per-service statistics",
		RunE: func(_ *cobra.Command, _ []string) error {
			day := dbtime.NowUTC().AddDate(0, 0, -1)
			if raw := statsFlags[dateFlag].GetString(); raw != "" {
				t, ok := dbtime.ParseFlexible(raw)
				if !ok {
					return fmt.Errorf("invalid --%s %q", dateFlag, raw)
				}
				day = t
			}
			period, ok := helper.ParseEnum(statsFlags[periodFlag].GetString(), infoModel.StatisticsPeriods)
			if !ok {
				return fmt.Errorf("invalid --%s %q", periodFlag, statsFlags[periodFlag].GetString())
			}

			db, err := connect(false)
			if err != nil {
				return err
			}
			defer database.Close(db)

			usage, err := infoService.SnapshotAppUsage(db, day)
			if err != nil {
				return fmt.Errorf("app usage snapshot: %w", err)
			}
			services, err := infoService.SnapshotServiceStatistics(db, period, day)
			if err != nil {
				return fmt.Errorf("service statistics snapshot: %w", err)
			}

			rt.log.Info().
				Str("date", usage.Date.Format(time.DateOnly)).
				Int("appointments", usage.AppointmentsBooked).
				Int("issues", usage.IssuesReported).
				Str("period", string(period)).
				Int("services", len(services)).
				Msg("statistics snapshot written")
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, statsFlags)
	return cmd
}
