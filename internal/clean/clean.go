// Package clean applies known, named fixups to loaded data. These are
// data-specific patches for defects in the upstream sources, not general
// sanitization; a new defect gets a new named rule here.
package clean

import "strings"

// Dan Issel's name is misspelled on the NBA Hall of Fame website.
var inducteeNameFixes = strings.NewReplacer(
	"Dan Issell", "Dan Issel",
)

// FixInducteeName repairs known misspellings in the inductee list.
// Idempotent.
func FixInducteeName(name string) string {
	return inducteeNameFixes.Replace(name)
}

// StripMarker removes the "*" marker the source files append to some player
// names. The marker flags active or notable players and carries no meaning
// for joining.
func StripMarker(name string) string {
	return strings.ReplaceAll(name, "*", "")
}
