package model

import (
	"encoding/json"
	"testing"
)

func TestValidGender(t *testing.T) {
	for _, g := range []string{GenderMale, GenderFemale, GenderNeutral} {
		if !ValidGender(g) {
			t.Errorf("%s: want valid", g)
		}
	}
	for _, g := range []string{GenderAny, "", "MALE", "dragon"} {
		if ValidGender(g) {
			t.Errorf("%s: want invalid", g)
		}
	}
}

func TestGenderCountMarshalsAsPair(t *testing.T) {
	b, err := json.Marshal([]GenderCount{{Gender: "female", Count: 40}, {Gender: "neutral", Count: 31}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[["female",40],["neutral",31]]`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
