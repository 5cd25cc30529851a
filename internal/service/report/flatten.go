package report

import (
	"github.com/sandevgo/elex/internal/core"
)

func Races(e *core.Election) []RaceRow {
	rows := make([]RaceRow, 0, len(e.Races))
	for _, r := range e.Races {
		rows = append(rows, RaceRow{
			ElectionDate: e.Date,
			RaceID:       r.ID,
			StateAbbrev:  r.StateAbbrev,
			OfficeID:     r.OfficeID,
			OfficeName:   r.OfficeName,
			SeatName:     r.SeatName,
			RaceType:     r.RaceType,
			National:     r.National,
			Uncontested:  r.Uncontested,
		})
	}
	return rows
}

func ReportingUnits(e *core.Election) []ReportingUnitRow {
	var rows []ReportingUnitRow
	for _, r := range e.Races {
		for _, ru := range r.ReportingUnits {
			rows = append(rows, ReportingUnitRow{
				ElectionDate:       e.Date,
				RaceID:             r.ID,
				ReportingUnitID:    ru.ID,
				ReportingUnitName:  ru.Name,
				Level:              ru.Level,
				StateAbbrev:        ru.StateAbbrev,
				FIPS:               ru.FIPS,
				PrecinctsReporting: ru.PrecinctsReporting,
				PrecinctsTotal:     ru.PrecinctsTotal,
				LastUpdated:        formatTime(ru.LastUpdated),
			})
		}
	}
	return rows
}

// Candidates lists each candidate of a candidate race once, in first-seen order.
// Ballot measure choices are left to BallotMeasures.
func Candidates(e *core.Election) []CandidateRow {
	seen := make(map[string]struct{})
	var rows []CandidateRow
	for _, r := range e.Races {
		if r.IsBallotMeasure() {
			continue
		}
		for _, ru := range r.ReportingUnits {
			for _, c := range ru.Candidates {
				if _, ok := seen[c.ID]; ok {
					continue
				}
				seen[c.ID] = struct{}{}
				rows = append(rows, CandidateRow{
					CandidateID: c.ID,
					PolID:       c.PolID,
					First:       c.First,
					Last:        c.Last,
					Party:       c.Party,
					BallotOrder: c.BallotOrder,
				})
			}
		}
	}
	return rows
}

func BallotMeasures(e *core.Election) []BallotMeasureRow {
	var rows []BallotMeasureRow
	for _, r := range e.Races {
		if !r.IsBallotMeasure() {
			continue
		}
		seen := make(map[string]struct{})
		for _, ru := range r.ReportingUnits {
			for _, c := range ru.Candidates {
				if _, ok := seen[c.ID]; ok {
					continue
				}
				seen[c.ID] = struct{}{}
				rows = append(rows, BallotMeasureRow{
					ElectionDate: e.Date,
					RaceID:       r.ID,
					StateAbbrev:  r.StateAbbrev,
					SeatName:     r.SeatName,
					Description:  r.Description,
					Choice:       c.Last,
					CandidateID:  c.ID,
					BallotOrder:  c.BallotOrder,
				})
			}
		}
	}
	return rows
}

// Results emits one row per candidate per reporting unit. VotePct is the
// candidate's share of the unit total, 0 when nothing has been counted.
func Results(e *core.Election) []ResultRow {
	var rows []ResultRow
	for _, r := range e.Races {
		for _, ru := range r.ReportingUnits {
			total := ru.TotalVotes()
			for _, c := range ru.Candidates {
				pct := 0.0
				if total > 0 {
					pct = float64(c.VoteCount) / float64(total)
				}
				rows = append(rows, ResultRow{
					ElectionDate:       e.Date,
					RaceID:             r.ID,
					StateAbbrev:        r.StateAbbrev,
					OfficeName:         r.OfficeName,
					SeatName:           r.SeatName,
					ReportingUnitID:    ru.ID,
					ReportingUnitName:  ru.Name,
					Level:              ru.Level,
					CandidateID:        c.ID,
					First:              c.First,
					Last:               c.Last,
					Party:              c.Party,
					VoteCount:          c.VoteCount,
					VotePct:            pct,
					Winner:             c.IsWinner(),
					Incumbent:          c.Incumbent,
					PrecinctsReporting: ru.PrecinctsReporting,
					PrecinctsTotal:     ru.PrecinctsTotal,
					LastUpdated:        formatTime(ru.LastUpdated),
				})
			}
		}
	}
	return rows
}

func Elections(list []core.ElectionInfo) []ElectionRow {
	rows := make([]ElectionRow, 0, len(list))
	for _, e := range list {
		rows = append(rows, ElectionRow{ElectionDate: e.Date, Test: e.Test, Live: e.Live})
	}
	return rows
}
