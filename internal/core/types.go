package core

import "time"

const (
	ElexName          = "elex"
	ElexUserAgent     = "elex-go/0.1"
	ElexRepositoryURL = "https://github.com/sandevgo/elex"
	ElexVersion       = "0.1.0"
)

// BallotMeasureOfficeID marks races that are ballot measures rather than candidate contests.
const BallotMeasureOfficeID = "I"

type ElectionInfo struct {
	Date string `json:"electionDate"`
	Test bool   `json:"testFlag"`
	Live bool   `json:"liveFlag"`
}

type Election struct {
	Date      string    `json:"electionDate"`
	Timestamp time.Time `json:"timestamp"`
	Races     []Race    `json:"races"`
}

type Race struct {
	ID             string          `json:"raceID"`
	StateAbbrev    string          `json:"statePostal"`
	OfficeID       string          `json:"officeID"`
	OfficeName     string          `json:"officeName"`
	SeatName       string          `json:"seatName,omitempty"`
	Description    string          `json:"description,omitempty"`
	RaceType       string          `json:"raceType"`
	National       bool            `json:"national"`
	Uncontested    bool            `json:"uncontested"`
	ReportingUnits []ReportingUnit `json:"reportingUnits"`
}

func (r Race) IsBallotMeasure() bool {
	return r.OfficeID == BallotMeasureOfficeID
}

type ReportingUnit struct {
	ID                 string      `json:"reportingunitID"`
	Level              string      `json:"level"`
	StateAbbrev        string      `json:"statePostal"`
	Name               string      `json:"reportingunitName,omitempty"`
	FIPS               string      `json:"fipsCode,omitempty"`
	PrecinctsReporting int         `json:"precinctsReporting"`
	PrecinctsTotal     int         `json:"precinctsTotal"`
	LastUpdated        time.Time   `json:"lastUpdated"`
	Candidates         []Candidate `json:"candidates"`
}

// TotalVotes sums the vote counts of every candidate in the unit.
func (ru ReportingUnit) TotalVotes() int {
	total := 0
	for _, c := range ru.Candidates {
		total += c.VoteCount
	}
	return total
}

type Candidate struct {
	ID          string `json:"candidateID"`
	PolID       string `json:"polID"`
	First       string `json:"first"`
	Last        string `json:"last"`
	Party       string `json:"party"`
	BallotOrder int    `json:"ballotOrder"`
	VoteCount   int    `json:"voteCount"`
	Winner      string `json:"winner,omitempty"`
	Incumbent   bool   `json:"incumbent"`
}

func (c Candidate) IsWinner() bool {
	return c.Winner == "X"
}
