// Package status is the single source of truth for the job-application
// lifecycle vocabulary. Three representations exist for each state: the
// symbolic key used in tool parameters, the integer code persisted by the
// backend, and the display label used in rendered output.
//
// The key/code/label mapping is a fixed bijection. The backend stores the
// integer, so codes must never be renumbered.
package status

import "strconv"

// Status ties together the three representations of one lifecycle state.
type Status struct {
	Key   string
	Code  int
	Label string
}

// All lists the seven states in code order (codes 0 through 6).
var All = []Status{
	{Key: "expired", Code: 0, Label: "Expired"},
	{Key: "saved", Code: 1, Label: "Saved"},
	{Key: "applied", Code: 2, Label: "Applied"},
	{Key: "initial_interview", Code: 3, Label: "Initial Interview"},
	{Key: "final_interview", Code: 4, Label: "Final Interview"},
	{Key: "offered", Code: 5, Label: "Offered"},
	{Key: "rejected", Code: 6, Label: "Rejected"},
}

// DefaultKey is the state assigned to newly tracked jobs.
const DefaultKey = "saved"

// Code maps a symbolic key to its wire code. Unknown keys fall back to the
// "saved" code: a deliberate compatibility decision with the existing
// backend integration, which is why tools validate keys with Valid before
// calling this.
func Code(key string) int {
	for _, s := range All {
		if s.Key == key {
			return s.Code
		}
	}
	return Code(DefaultKey)
}

// Label maps a wire code to its display label, falling back to the decimal
// form of the code when it is out of range.
func Label(code int) string {
	for _, s := range All {
		if s.Code == code {
			return s.Label
		}
	}
	return strconv.Itoa(code)
}

// Valid reports whether key names one of the seven states.
func Valid(key string) bool {
	for _, s := range All {
		if s.Key == key {
			return true
		}
	}
	return false
}

// Keys returns the seven symbolic keys in code order.
func Keys() []string {
	keys := make([]string, len(All))
	for i, s := range All {
		keys[i] = s.Key
	}
	return keys
}
