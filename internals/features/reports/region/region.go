// Package region holds the Nigerian state enumeration and the state-name
// normalization used by every report kind before matching or storage.
package region

import (
	"fmt"
	"strings"
)

// State is one of the 36 Nigerian states plus the Federal Capital Territory.
type State string

const FCT State = "FCT"

var allStates = []State{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa",
	"Benue", "Borno", "Cross River", "Delta", "Ebonyi", "Edo",
	"Ekiti", "Enugu", FCT, "Gombe", "Imo", "Jigawa",
	"Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara",
	"Lagos", "Nasarawa", "Niger", "Ogun", "Ondo", "Osun",
	"Oyo", "Plateau", "Rivers", "Sokoto", "Taraba", "Yobe",
	"Zamfara",
}

// Free-text variants of the capital territory that field teams use
// interchangeably on their sheets.
var fctAliases = []string{"Federal Capital Territory", "FCT", "Abuja"}

var stateSet = func() map[State]struct{} {
	m := make(map[State]struct{}, len(allStates))
	for _, s := range allStates {
		m[s] = struct{}{}
	}
	return m
}()

// All returns the canonical state names in alphabetical order.
func All() []State {
	out := make([]State, len(allStates))
	copy(out, allStates)
	return out
}

// InvalidStateError reports a state name that is not one of the 37
// recognized values, carrying the offending raw text.
type InvalidStateError struct {
	Value string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Value)
}

// Normalize trims and title-cases the raw state text, folds the FCT
// variants into the canonical value, and requires an exact match against
// the enumeration otherwise.
func Normalize(raw string) (State, error) {
	cleaned := titleCase(strings.TrimSpace(raw))

	for _, alias := range fctAliases {
		if strings.EqualFold(cleaned, alias) {
			return FCT, nil
		}
	}

	s := State(cleaned)
	if _, ok := stateSet[s]; !ok {
		return "", &InvalidStateError{Value: raw}
	}
	return s, nil
}

// IsValid reports whether v is already a canonical state name.
func IsValid(v string) bool {
	_, ok := stateSet[State(v)]
	return ok
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
