package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sandevgo/elex/internal/core"
	"github.com/sandevgo/elex/internal/service/guard"
	"github.com/sandevgo/elex/internal/service/report"
	"github.com/sandevgo/elex/pkg/dates"
	"github.com/sandevgo/elex/pkg/log"
	"github.com/spf13/cobra"
)

type electionView func(w io.Writer, e *core.Election) error

// newElectionCmd builds a subcommand that needs an election date or a data file.
func newElectionCmd(use, short string, view electionView) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [date]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := func(ctx context.Context, cc *guard.Context) error {
				e, err := loadElection(ctx, cc)
				if err != nil {
					return err
				}
				return view(cmd.OutOrStdout(), e)
			}
			return runGuarded(cmd, args, guard.RequireAPIKey(guard.RequireDate(handler)))
		},
	}
}

var electionsCmd = &cobra.Command{
	Use:   "elections",
	Short: "List the elections known to the AP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := func(ctx context.Context, cc *guard.Context) error {
			client, err := newAPClient()
			if err != nil {
				return err
			}
			list, err := client.Elections(ctx)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), formatJSON, report.ElectionHeader, report.Elections(list))
		}
		return runGuarded(cmd, args, guard.RequireAPIKey(handler))
	},
}

var nextElectionCmd = &cobra.Command{
	Use:   "next-election [date]",
	Short: "Show the next election on or after a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := func(ctx context.Context, cc *guard.Context) error {
			after := time.Now().UTC()
			if len(args) > 0 {
				d, err := dates.Parse(args[0])
				if err != nil {
					return err
				}
				after = d
			}

			client, err := newAPClient()
			if err != nil {
				return err
			}
			list, err := client.Elections(ctx)
			if err != nil {
				return err
			}

			next, ok := nextElection(ctx, list, after)
			if !ok {
				return fmt.Errorf("no election found on or after %s", dates.Format(after))
			}
			return report.Write(cmd.OutOrStdout(), formatJSON, report.ElectionHeader, report.Elections([]core.ElectionInfo{next}))
		}
		return runGuarded(cmd, args, guard.RequireAPIKey(handler))
	},
}

// nextElection returns the earliest live election dated on or after the day of after.
func nextElection(ctx context.Context, list []core.ElectionInfo, after time.Time) (core.ElectionInfo, bool) {
	y, m, d := after.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var (
		best     core.ElectionInfo
		bestDate time.Time
		found    bool
	)
	for _, e := range list {
		if e.Test && !e.Live {
			continue
		}
		date, err := dates.Parse(e.Date)
		if err != nil {
			log.FromCtx(ctx).Debug().Str("date", e.Date).Msg("skipping election with unparseable date")
			continue
		}
		if date.Before(day) {
			continue
		}
		if !found || date.Before(bestDate) {
			best, bestDate, found = e, date, true
		}
	}
	return best, found
}

func init() {
	rootCmd.AddCommand(
		newElectionCmd("races", "Races in an election", func(w io.Writer, e *core.Election) error {
			return report.Write(w, formatJSON, report.RaceHeader, report.Races(e))
		}),
		newElectionCmd("reporting-units", "Reporting units of every race", func(w io.Writer, e *core.Election) error {
			return report.Write(w, formatJSON, report.ReportingUnitHeader, report.ReportingUnits(e))
		}),
		newElectionCmd("candidates", "Candidates running in an election", func(w io.Writer, e *core.Election) error {
			return report.Write(w, formatJSON, report.CandidateHeader, report.Candidates(e))
		}),
		newElectionCmd("ballot-measures", "Ballot measures and their choices", func(w io.Writer, e *core.Election) error {
			return report.Write(w, formatJSON, report.BallotMeasureHeader, report.BallotMeasures(e))
		}),
		newElectionCmd("results", "Results per candidate per reporting unit", func(w io.Writer, e *core.Election) error {
			return report.Write(w, formatJSON, report.ResultHeader, report.Results(e))
		}),
		electionsCmd,
		nextElectionCmd,
	)
}
