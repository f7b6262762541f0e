// Package rank derives stable zero-based ranks from a contest snapshot.
package rank

import (
	"math"
	"sort"

	"github.com/okian/podium/internal/domain/model"
)

// rankable reports whether v is a finite ranking value. The remote API
// sorts nulls last; non-finite values that survive decoding get the
// same treatment so downstream ordering stays total.
func rankable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// SortByPctChange orders entrants by percent change descending with
// null or non-finite values strictly after all finite ones. Ties and
// the null tail break on account id so the order is deterministic and
// the same input always yields the same rank map.
func SortByPctChange(entrants []model.Entrant) {
	sort.SliceStable(entrants, func(i, j int) bool {
		a, b := entrants[i], entrants[j]
		ar, br := rankable(a.PctChange), rankable(b.PctChange)
		switch {
		case ar && !br:
			return true
		case !ar && br:
			return false
		case ar && br && *a.PctChange != *b.PctChange:
			return *a.PctChange > *b.PctChange
		}
		return a.AccountID < b.AccountID
	})
}

// BuildRankMap assigns each entrant its index in the given order.
// Entrants with an empty account id are skipped; the resulting values
// form a dense permutation 0..K-1 over the K non-empty ids.
func BuildRankMap(ordered []model.Entrant) model.RankMap {
	m := make(model.RankMap, len(ordered))
	next := 0
	for _, e := range ordered {
		if e.AccountID == "" {
			continue
		}
		if _, dup := m[e.AccountID]; dup {
			continue
		}
		m[e.AccountID] = next
		next++
	}
	return m
}

// Movement compares an entrant's current rank against the previous
// cycle's map. Entrants absent last cycle are reported as new.
func Movement(prev model.RankMap, accountID string, current int) (model.Movement, int) {
	old, ok := prev[accountID]
	if !ok {
		return model.MovementNew, -1
	}
	switch {
	case current < old:
		return model.MovementUp, old
	case current > old:
		return model.MovementDown, old
	}
	return model.MovementSame, old
}
