package dataset

import (
	"strings"
	"testing"
	"time"
)

const playersHeader = "idx,player,height,weight,collage,born,birth_city,birth_state\n"

func TestReadPlayers(t *testing.T) {
	in := playersHeader +
		"5,LeBron James*,83,250,,2003-01-01,Akron,OH\n" +
		"6,Bill Russell,82,215,University of San Francisco,1934,Monroe,LA\n"
	players, err := ReadPlayers(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 2 {
		t.Fatalf("len=%d", len(players))
	}

	lebron := players[0]
	if lebron.Name != "LeBron James" {
		t.Fatalf("marker not stripped: %q", lebron.Name)
	}
	if lebron.Height == nil || *lebron.Height != 83 {
		t.Fatalf("height=%v", lebron.Height)
	}
	if lebron.College != nil {
		t.Fatalf("college should be nil")
	}
	if !lebron.Born.Equal(time.Date(2003, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("born=%v", lebron.Born)
	}

	russell := players[1]
	if russell.College == nil || *russell.College != "University of San Francisco" {
		t.Fatalf("college=%v", russell.College)
	}
	if russell.BirthState == nil || *russell.BirthState != "LA" {
		t.Fatalf("birth_state=%v", russell.BirthState)
	}
}

func TestReadPlayersDropsEmptyRows(t *testing.T) {
	in := playersHeader +
		"1,Bob Cousy,72,175,Holy Cross,1928,New York,NY\n" +
		"2,,,,,,,\n"
	players, err := ReadPlayers(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 1 {
		t.Fatalf("len=%d", len(players))
	}
	if players[0].Name != "Bob Cousy" {
		t.Fatalf("name=%q", players[0].Name)
	}
}

func TestReadPlayersNoMarkersSurvive(t *testing.T) {
	in := playersHeader +
		"1,Kareem Abdul-Jabbar*,86,225,UCLA,1947,New York,NY\n" +
		"2,Julius Erving*,79,210,Massachusetts,1950,Roosevelt,NY\n"
	players, err := ReadPlayers(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range players {
		if strings.Contains(p.Name, "*") {
			t.Fatalf("marker survived: %q", p.Name)
		}
	}
}
