// Package model contains domain models passed between layers.
package model

import "time"

// Entrant represents one contest account in a fetched snapshot.
// Fields mirror the remote table's column set; nullable columns use
// pointers so "absent" and "zero" stay distinguishable until ranking.
type Entrant struct {
	AccountID      string // unique within a snapshot
	CustomerName   string
	Country        string // free text, resolved to a code at read time
	Plan           string
	Equity         float64
	OpenPnL        float64
	PctChange      *float64 // ranking field; nil sorts after all finite values
	TimeTakenHours *float64
	UpdatedAt      time.Time
}

// HasPctChange reports whether the entrant carries a usable ranking value.
func (e Entrant) HasPctChange() bool {
	return e.PctChange != nil
}

// RankMap maps an account id to its zero-based position in the
// percent-change-descending order of one snapshot. Positions are dense
// integers 0..N-1; an account absent from the snapshot has no entry.
type RankMap map[string]int

// Movement describes how an entrant's rank changed between two cycles.
type Movement string

// Movement values reported against the previous cycle's rank map.
const (
	MovementUp   Movement = "up"
	MovementDown Movement = "down"
	MovementSame Movement = "same"
	MovementNew  Movement = "new" // absent from the previous snapshot
)

// Standing is one leaderboard row: an entrant with its current rank and
// its movement relative to the previous refresh cycle.
type Standing struct {
	Entrant
	Rank     int // zero-based
	PrevRank int // -1 when the entrant was absent last cycle
	Movement Movement
	Prize    string // label for prize-winning ranks, empty otherwise
}
