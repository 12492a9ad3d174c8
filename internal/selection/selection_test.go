package selection_test

import (
	"reflect"
	"testing"

	"github.com/AntiHeld889/beamerctl/internal/catalog"
	"github.com/AntiHeld889/beamerctl/internal/selection"
)

func testIndex() *catalog.Index {
	return catalog.New([]catalog.Entry{
		{Path: "a.mp4", DisplayName: "A"},
		{Path: "b.mp4", DisplayName: "B"},
		{Path: "clips/c.mp4", DisplayName: "C"},
		{Path: "clips/d.mp4", DisplayName: "D"},
	})
}

func TestModel_ToggleAppendsInEncounterOrder(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)

	sel.Toggle("b.mp4")
	sel.Toggle("clips/c.mp4")
	sel.Toggle("a.mp4")

	want := []string{"b.mp4", "clips/c.mp4", "a.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestModel_ToggleOffRemovesWithoutReordering(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.Toggle("a.mp4")
	sel.Toggle("b.mp4")
	sel.Toggle("clips/c.mp4")

	sel.Toggle("b.mp4")

	want := []string{"a.mp4", "clips/c.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("order after deselect = %v, want %v", got, want)
	}
	if sel.Contains("b.mp4") {
		t.Error("b.mp4 should no longer be selected")
	}
}

func TestModel_ReselectAppendsAtEnd(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.Toggle("a.mp4")
	sel.Toggle("b.mp4")
	sel.Toggle("a.mp4") // off
	sel.Toggle("a.mp4") // back on

	want := []string{"b.mp4", "a.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("reselected entry should land at the end: got %v, want %v", got, want)
	}
}

func TestModel_NoDuplicates(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)

	if !sel.SetOn("a.mp4") {
		t.Fatal("first SetOn should change state")
	}
	if sel.SetOn("a.mp4") {
		t.Error("second SetOn should be a no-op")
	}
	if sel.Len() != 1 {
		t.Errorf("len = %d, want 1", sel.Len())
	}
}

func TestModel_SetOffIdempotent(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)

	if sel.SetOff("a.mp4") {
		t.Error("SetOff on unselected path should be a no-op")
	}
	sel.SetOn("a.mp4")
	if !sel.SetOff("a.mp4") {
		t.Error("SetOff on selected path should change state")
	}
	if sel.SetOff("a.mp4") {
		t.Error("repeated SetOff should be a no-op")
	}
}

func TestModel_UnknownPathRejected(t *testing.T) {
	var fired int
	sel := selection.NewModel(testIndex(), func([]string) { fired++ })

	if sel.SetOn("missing.mp4") {
		t.Error("unknown path should not be selectable")
	}
	if sel.Len() != 0 || fired != 0 {
		t.Errorf("rejected path must not mutate state: len=%d fired=%d", sel.Len(), fired)
	}
}

func TestModel_MoveSwapsAdjacent(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.SetOn("a.mp4")
	sel.SetOn("b.mp4")
	sel.SetOn("clips/c.mp4")

	if !sel.Move("clips/c.mp4", -1) {
		t.Fatal("move up in the middle should succeed")
	}
	want := []string{"a.mp4", "clips/c.mp4", "b.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("after move up: %v, want %v", got, want)
	}

	if !sel.Move("a.mp4", 1) {
		t.Fatal("move down should succeed")
	}
	want = []string{"clips/c.mp4", "a.mp4", "b.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("after move down: %v, want %v", got, want)
	}
}

func TestModel_MoveBoundariesAreNoOps(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.SetOn("a.mp4")
	sel.SetOn("b.mp4")

	if sel.Move("a.mp4", -1) {
		t.Error("move up on first item should be a no-op")
	}
	if sel.Move("b.mp4", 1) {
		t.Error("move down on last item should be a no-op")
	}
	if sel.Move("clips/c.mp4", 1) {
		t.Error("move on unselected path should be a no-op")
	}
	if sel.Move("a.mp4", 2) {
		t.Error("non-adjacent direction should be a no-op")
	}

	want := []string{"a.mp4", "b.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("order should be unchanged: %v, want %v", got, want)
	}
}

func TestModel_MoveBoundsViaCanMove(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.SetOn("a.mp4")

	// Single item: both directions disabled.
	if sel.CanMoveUp("a.mp4") || sel.CanMoveDown("a.mp4") {
		t.Error("single item should not be movable in either direction")
	}

	sel.SetOn("b.mp4")
	if sel.CanMoveUp("a.mp4") {
		t.Error("first item should not move up")
	}
	if !sel.CanMoveDown("a.mp4") {
		t.Error("first of two should move down")
	}
	if !sel.CanMoveUp("b.mp4") {
		t.Error("last of two should move up")
	}
	if sel.CanMoveDown("b.mp4") {
		t.Error("last item should not move down")
	}
}

func TestModel_OnChangeFiresWithCurrentOrder(t *testing.T) {
	var got [][]string
	sel := selection.NewModel(testIndex(), func(order []string) {
		got = append(got, order)
	})

	sel.Toggle("a.mp4")
	sel.Toggle("b.mp4")
	sel.Move("b.mp4", -1)
	sel.Remove("b.mp4")

	want := [][]string{
		{"a.mp4"},
		{"a.mp4", "b.mp4"},
		{"b.mp4", "a.mp4"},
		{"a.mp4"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("onChange sequence = %v, want %v", got, want)
	}
}

func TestModel_OnChangeNotFiredOnNoOps(t *testing.T) {
	var fired int
	sel := selection.NewModel(testIndex(), func([]string) { fired++ })

	sel.SetOn("a.mp4")
	sel.SetOn("a.mp4")
	sel.SetOff("b.mp4")
	sel.Move("a.mp4", -1)

	if fired != 1 {
		t.Errorf("onChange fired %d times, want 1", fired)
	}
}

func TestModel_SeedDoesNotFireOnChange(t *testing.T) {
	var fired int
	sel := selection.NewModel(testIndex(), func([]string) { fired++ })

	sel.Seed("a.mp4")
	sel.Seed("b.mp4")
	sel.Seed("a.mp4") // duplicate, no-op

	if fired != 0 {
		t.Errorf("seeding fired onChange %d times, want 0", fired)
	}
	want := []string{"a.mp4", "b.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("seeded order = %v, want %v", got, want)
	}
}

func TestModel_ApplyInitialOrder(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.Seed("a.mp4")
	sel.Seed("b.mp4")
	sel.Seed("clips/c.mp4")

	// List c then a; b is selected but unlisted and keeps encounter order.
	sel.ApplyInitialOrder([]string{"clips/c.mp4", "a.mp4"})

	want := []string{"clips/c.mp4", "a.mp4", "b.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("initial order = %v, want %v", got, want)
	}
}

func TestModel_ApplyInitialOrderIgnoresUnselectedAndDuplicates(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.Seed("a.mp4")
	sel.Seed("b.mp4")

	sel.ApplyInitialOrder([]string{"b.mp4", "clips/d.mp4", "b.mp4", "a.mp4"})

	want := []string{"b.mp4", "a.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("initial order = %v, want %v", got, want)
	}
}

func TestModel_ApplyInitialOrderIsOneTime(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.Seed("a.mp4")
	sel.SetOn("b.mp4") // user mutation seals the ordering

	sel.ApplyInitialOrder([]string{"b.mp4", "a.mp4"})

	want := []string{"a.mp4", "b.mp4"}
	if got := sel.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("order after late initial order = %v, want %v", got, want)
	}
}

func TestModel_OrderReturnsCopy(t *testing.T) {
	sel := selection.NewModel(testIndex(), nil)
	sel.SetOn("a.mp4")
	sel.SetOn("b.mp4")

	order := sel.Order()
	order[0] = "mutated"

	if got := sel.Order()[0]; got != "a.mp4" {
		t.Errorf("internal order mutated through returned slice: %q", got)
	}
}
