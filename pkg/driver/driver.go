package driver

import (
	"errors"
	"math/rand"
)

var ErrEmptyRoster = errors.New("driver roster is empty")

// Selector decides which roster entry gets the booking. Injected so tests can
// pin the choice.
type Selector interface {
	Pick(roster []string) string
}

type RandomSelector struct{}

func (RandomSelector) Pick(roster []string) string {
	return roster[rand.Intn(len(roster))]
}

// Assigner hands out drivers from a fixed roster. The roster is validated
// once at construction; an empty roster is a configuration fault.
type Assigner struct {
	roster   []string
	selector Selector
}

func NewAssigner(roster []string, selector Selector) (*Assigner, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if selector == nil {
		selector = RandomSelector{}
	}
	return &Assigner{roster: roster, selector: selector}, nil
}

func (a *Assigner) Assign() string {
	return a.selector.Pick(a.roster)
}

func (a *Assigner) Roster() []string {
	return a.roster
}
