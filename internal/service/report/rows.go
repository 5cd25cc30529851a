package report

import (
	"strconv"
	"time"
)

// Row is one flattened output record.
type Row interface {
	Record() []string
}

type RaceRow struct {
	ElectionDate string `json:"electiondate"`
	RaceID       string `json:"raceid"`
	StateAbbrev  string `json:"statepostal"`
	OfficeID     string `json:"officeid"`
	OfficeName   string `json:"officename"`
	SeatName     string `json:"seatname"`
	RaceType     string `json:"racetype"`
	National     bool   `json:"national"`
	Uncontested  bool   `json:"uncontested"`
}

var RaceHeader = []string{"electiondate", "raceid", "statepostal", "officeid", "officename", "seatname", "racetype", "national", "uncontested"}

func (r RaceRow) Record() []string {
	return []string{
		r.ElectionDate, r.RaceID, r.StateAbbrev, r.OfficeID, r.OfficeName, r.SeatName, r.RaceType,
		strconv.FormatBool(r.National), strconv.FormatBool(r.Uncontested),
	}
}

type ReportingUnitRow struct {
	ElectionDate       string `json:"electiondate"`
	RaceID             string `json:"raceid"`
	ReportingUnitID    string `json:"reportingunitid"`
	ReportingUnitName  string `json:"reportingunitname"`
	Level              string `json:"level"`
	StateAbbrev        string `json:"statepostal"`
	FIPS               string `json:"fipscode"`
	PrecinctsReporting int    `json:"precinctsreporting"`
	PrecinctsTotal     int    `json:"precinctstotal"`
	LastUpdated        string `json:"lastupdated"`
}

var ReportingUnitHeader = []string{"electiondate", "raceid", "reportingunitid", "reportingunitname", "level", "statepostal", "fipscode", "precinctsreporting", "precinctstotal", "lastupdated"}

func (r ReportingUnitRow) Record() []string {
	return []string{
		r.ElectionDate, r.RaceID, r.ReportingUnitID, r.ReportingUnitName, r.Level, r.StateAbbrev, r.FIPS,
		strconv.Itoa(r.PrecinctsReporting), strconv.Itoa(r.PrecinctsTotal), r.LastUpdated,
	}
}

type CandidateRow struct {
	CandidateID string `json:"candidateid"`
	PolID       string `json:"polid"`
	First       string `json:"first"`
	Last        string `json:"last"`
	Party       string `json:"party"`
	BallotOrder int    `json:"ballotorder"`
}

var CandidateHeader = []string{"candidateid", "polid", "first", "last", "party", "ballotorder"}

func (r CandidateRow) Record() []string {
	return []string{r.CandidateID, r.PolID, r.First, r.Last, r.Party, strconv.Itoa(r.BallotOrder)}
}

type BallotMeasureRow struct {
	ElectionDate string `json:"electiondate"`
	RaceID       string `json:"raceid"`
	StateAbbrev  string `json:"statepostal"`
	SeatName     string `json:"seatname"`
	Description  string `json:"description"`
	Choice       string `json:"choice"`
	CandidateID  string `json:"candidateid"`
	BallotOrder  int    `json:"ballotorder"`
}

var BallotMeasureHeader = []string{"electiondate", "raceid", "statepostal", "seatname", "description", "choice", "candidateid", "ballotorder"}

func (r BallotMeasureRow) Record() []string {
	return []string{
		r.ElectionDate, r.RaceID, r.StateAbbrev, r.SeatName, r.Description, r.Choice, r.CandidateID,
		strconv.Itoa(r.BallotOrder),
	}
}

type ResultRow struct {
	ElectionDate       string  `json:"electiondate"`
	RaceID             string  `json:"raceid"`
	StateAbbrev        string  `json:"statepostal"`
	OfficeName         string  `json:"officename"`
	SeatName           string  `json:"seatname"`
	ReportingUnitID    string  `json:"reportingunitid"`
	ReportingUnitName  string  `json:"reportingunitname"`
	Level              string  `json:"level"`
	CandidateID        string  `json:"candidateid"`
	First              string  `json:"first"`
	Last               string  `json:"last"`
	Party              string  `json:"party"`
	VoteCount          int     `json:"votecount"`
	VotePct            float64 `json:"votepct"`
	Winner             bool    `json:"winner"`
	Incumbent          bool    `json:"incumbent"`
	PrecinctsReporting int     `json:"precinctsreporting"`
	PrecinctsTotal     int     `json:"precinctstotal"`
	LastUpdated        string  `json:"lastupdated"`
}

var ResultHeader = []string{
	"electiondate", "raceid", "statepostal", "officename", "seatname", "reportingunitid", "reportingunitname",
	"level", "candidateid", "first", "last", "party", "votecount", "votepct", "winner", "incumbent",
	"precinctsreporting", "precinctstotal", "lastupdated",
}

func (r ResultRow) Record() []string {
	return []string{
		r.ElectionDate, r.RaceID, r.StateAbbrev, r.OfficeName, r.SeatName, r.ReportingUnitID, r.ReportingUnitName,
		r.Level, r.CandidateID, r.First, r.Last, r.Party, strconv.Itoa(r.VoteCount),
		strconv.FormatFloat(r.VotePct, 'f', 6, 64), strconv.FormatBool(r.Winner), strconv.FormatBool(r.Incumbent),
		strconv.Itoa(r.PrecinctsReporting), strconv.Itoa(r.PrecinctsTotal), r.LastUpdated,
	}
}

type ElectionRow struct {
	ElectionDate string `json:"electiondate"`
	Test         bool   `json:"testflag"`
	Live         bool   `json:"liveflag"`
}

var ElectionHeader = []string{"electiondate", "testflag", "liveflag"}

func (r ElectionRow) Record() []string {
	return []string{r.ElectionDate, strconv.FormatBool(r.Test), strconv.FormatBool(r.Live)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
