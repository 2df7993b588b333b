// Package ranking aggregates points per class and orders classes by score.
package ranking

import (
	"cmp"
	"slices"
)

// NoWinner is returned by WinningClass when no class has been scored yet.
const NoWinner = ""

type Standing struct {
	ClassName string `json:"className"`
	Score     int    `json:"score"`
}

// ClassRanking holds the cumulative score of every class referenced so far.
// It is not safe for concurrent use.
//
// Equal scores are ordered by class name, ascending, both in List and in
// WinningClass, so results never depend on map iteration order.
type ClassRanking struct {
	scores map[string]int
}

func New() *ClassRanking {
	return &ClassRanking{scores: make(map[string]int)}
}

// AddPoints adds points (negative values included) to className,
// creating the entry on first use.
func (r *ClassRanking) AddPoints(className string, points int) {
	r.scores[className] += points
}

func (r *ClassRanking) Score(className string) (int, bool) {
	score, ok := r.scores[className]
	return score, ok
}

func (r *ClassRanking) Len() int {
	return len(r.scores)
}

func (r *ClassRanking) WinningClass() string {
	winner, best, found := NoWinner, 0, false
	for name, score := range r.scores {
		if !found || score > best || (score == best && name < winner) {
			winner, best, found = name, score, true
		}
	}
	return winner
}

// List returns a fresh snapshot sorted by descending score.
func (r *ClassRanking) List() []Standing {
	standings := make([]Standing, 0, len(r.scores))
	for name, score := range r.scores {
		standings = append(standings, Standing{ClassName: name, Score: score})
	}

	slices.SortFunc(standings, compareStandings)
	return standings
}

func compareStandings(a, b Standing) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.ClassName, b.ClassName)
}
