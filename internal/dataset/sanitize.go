package dataset

import "regexp"

// Artifact blank-data lines in the season stats export: a row counter
// followed only by separator commas.
var artifactLine = regexp.MustCompile(`(?m)^\d+,+$`)

// StripArtifactLines removes artifact blank-data lines from raw delimited
// text, leaving every other line and the line order unchanged. It must run
// on the whole file before structured parsing, otherwise a malformed line
// misaligns column parsing for everything after it.
func StripArtifactLines(text string) string {
	return artifactLine.ReplaceAllString(text, "")
}
