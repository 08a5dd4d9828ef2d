package dataset

import (
	"io"

	"hoopfame/internal"
	"hoopfame/internal/clean"
)

// PlayersSchema mirrors the biography CSV column order. "collage" is the
// source file's own header spelling. Rows with nothing but a counter are
// dropped.
var PlayersSchema = Schema{
	DropEmpty: true,
	Columns: []Column{
		{Name: "idx", Kind: KindInt, Counter: true},
		{Name: "player", Kind: KindString},
		{Name: "height", Kind: KindFloat},
		{Name: "weight", Kind: KindFloat},
		{Name: "collage", Kind: KindCategory},
		{Name: "born", Kind: KindDate, Key: true},
		{Name: "birth_city", Kind: KindString},
		{Name: "birth_state", Kind: KindCategory},
	},
}

// ReadPlayers loads the player biography table. Name markers are stripped
// and the row counter is discarded.
func ReadPlayers(r io.Reader) ([]internal.PlayerRecord, error) {
	rows, err := Read(r, PlayersSchema)
	if err != nil {
		return nil, err
	}

	out := make([]internal.PlayerRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, internal.PlayerRecord{
			Born:       row.Date("born"),
			Name:       clean.StripMarker(row.Str("player")),
			Height:     row.FloatPtr("height"),
			Weight:     row.FloatPtr("weight"),
			College:    row.StrPtr("collage"),
			BirthCity:  row.StrPtr("birth_city"),
			BirthState: row.StrPtr("birth_state"),
		})
	}
	return out, nil
}
