package search_test

import (
	"reflect"
	"testing"

	"github.com/AntiHeld889/beamerctl/internal/catalog"
	"github.com/AntiHeld889/beamerctl/internal/search"
)

func testIndex() *catalog.Index {
	return catalog.New([]catalog.Entry{
		{Path: "intro.mp4"},
		{Path: "clips/Abend.mp4"},
		{Path: "clips/morgen.mp4"},
		{Path: "loops/ambient.webm"},
	})
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	matches := search.Filter(testIndex(), "ABEND")

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Entry.Path != "clips/Abend.mp4" {
		t.Errorf("matched %q", m.Entry.Path)
	}
	if got := m.Entry.Path[m.Start:m.End]; got != "Abend" {
		t.Errorf("match range covers %q, want %q", got, "Abend")
	}
}

func TestFilter_EncounterOrder(t *testing.T) {
	matches := search.Filter(testIndex(), "mp4")

	var paths []string
	for _, m := range matches {
		paths = append(paths, m.Entry.Path)
	}
	want := []string{"intro.mp4", "clips/Abend.mp4", "clips/morgen.mp4"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("match order = %v, want %v", paths, want)
	}
}

func TestFilter_BlankQueryMeansNotSearching(t *testing.T) {
	if got := search.Filter(testIndex(), ""); got != nil {
		t.Errorf("empty query = %v, want nil", got)
	}
	if got := search.Filter(testIndex(), "   "); got != nil {
		t.Errorf("whitespace query = %v, want nil", got)
	}
}

func TestFilter_NoMatchesIsEmptyNotNilSemantics(t *testing.T) {
	// Zero matches on a real query is a different state than a blank
	// query; the caller distinguishes them via the query, so here both
	// return no matches but the query was genuinely searched.
	if got := search.Filter(testIndex(), "zzz"); len(got) != 0 {
		t.Errorf("unmatched query = %v, want none", got)
	}
}

func TestFilter_MatchesAcrossDirectorySegments(t *testing.T) {
	matches := search.Filter(testIndex(), "clips/mor")

	if len(matches) != 1 || matches[0].Entry.Path != "clips/morgen.mp4" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestFuzzyPaths_EmptyQueryReturnsAll(t *testing.T) {
	got := search.FuzzyPaths(testIndex(), "")

	want := []string{"intro.mp4", "clips/Abend.mp4", "clips/morgen.mp4", "loops/ambient.webm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestFuzzyPaths_RanksMatches(t *testing.T) {
	got := search.FuzzyPaths(testIndex(), "morgen")

	if len(got) == 0 || got[0] != "clips/morgen.mp4" {
		t.Errorf("fuzzy result = %v, want clips/morgen.mp4 first", got)
	}
}

func TestFuzzyPaths_NoMatch(t *testing.T) {
	if got := search.FuzzyPaths(testIndex(), "qqqq"); len(got) != 0 {
		t.Errorf("fuzzy result = %v, want none", got)
	}
}
