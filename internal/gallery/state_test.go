package gallery

import (
	"testing"

	"github.com/five82/skyview/internal/apod"
)

func loadedState() State {
	return NewState().WithCollection(sampleRecords())
}

func TestState_SelectPrevNextInDerivedOrder(t *testing.T) {
	s := loadedState()
	if got := dates(s.Records()); got[0] != "2024-01-03" || got[1] != "2024-01-02" || got[2] != "2024-01-01" {
		t.Fatalf("derived = %v, want newest first", got)
	}

	s = s.Select("2024-01-02")
	if s.Nav() != OpenAt("2024-01-02") {
		t.Fatalf("after select nav = %+v, want Open(2024-01-02)", s.Nav())
	}

	s = s.Prev()
	if s.Nav() != OpenAt("2024-01-03") {
		t.Fatalf("after prev nav = %+v, want Open(2024-01-03)", s.Nav())
	}

	s = s.Prev()
	if s.Nav() != OpenAt("2024-01-03") {
		t.Fatalf("prev at first element moved to %+v", s.Nav())
	}

	s = s.Next()
	if s.Nav() != OpenAt("2024-01-02") {
		t.Fatalf("next from first nav = %+v, want Open(2024-01-02)", s.Nav())
	}
}

func TestState_FilteredOutKeyCloses(t *testing.T) {
	s := loadedState().Select("2024-01-01")
	if !s.Nav().IsOpen() {
		t.Fatalf("select did not open")
	}

	s = s.WithSearch("comet")
	if got := dates(s.Records()); len(got) != 1 || got[0] != "2024-01-02" {
		t.Fatalf("derived = %v, want [2024-01-02]", got)
	}
	if s.Nav() != Closed() {
		t.Fatalf("nav = %+v, want Closed after key filtered out", s.Nav())
	}
}

func TestState_EmptyCollection(t *testing.T) {
	s := NewState().WithCollection(nil)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
	for _, q := range []Query{{Search: "x"}, {Property: SortByTitle, Order: Ascending}} {
		if s.WithQuery(q).Len() != 0 {
			t.Fatalf("query %+v produced items from an empty collection", q)
		}
	}
	s = s.Select("2024-01-01")
	if s.Nav() != Closed() {
		t.Fatalf("select on empty list = %+v, want Closed", s.Nav())
	}
	if s.Next().Nav() != Closed() || s.Prev().Nav() != Closed() {
		t.Fatalf("prev/next on empty list changed state")
	}
}

func TestState_NavigationBoundary(t *testing.T) {
	raw := []apod.Record{
		{Title: "a", Date: "2024-01-01"},
		{Title: "b", Date: "2024-01-02"},
		{Title: "c", Date: "2024-01-03"},
		{Title: "d", Date: "2024-01-04"},
	}
	s := NewState().WithCollection(raw).WithSortOrder(Ascending)
	n := s.Len()

	for i := 0; i < n; i++ {
		rec, _ := s.At(i)
		open := s.Select(rec.Date)

		prev := open.Prev()
		wantPrev := i
		if i > 0 {
			wantPrev = i - 1
		}
		if got := prev.IndexOf(prev.Nav().Key); got != wantPrev {
			t.Errorf("prev from %d landed on %d, want %d", i, got, wantPrev)
		}

		next := open.Next()
		wantNext := i
		if i < n-1 {
			wantNext = i + 1
		}
		if got := next.IndexOf(next.Nav().Key); got != wantNext {
			t.Errorf("next from %d landed on %d, want %d", i, got, wantNext)
		}
	}
}

func TestState_SelectOutsideDerivedListIsIgnored(t *testing.T) {
	s := loadedState().WithSearch("comet")
	if got := s.Select("2024-01-01"); got.Nav() != Closed() {
		t.Fatalf("select of filtered-out key = %+v, want Closed", got.Nav())
	}
	if got := s.Select("1999-01-01"); got.Nav() != Closed() {
		t.Fatalf("select of unknown key = %+v, want Closed", got.Nav())
	}
}

func TestState_ReorderKeepsOpenKey(t *testing.T) {
	s := loadedState().Select("2024-01-03")
	s = s.WithSortProperty(SortByTitle).WithSortOrder(Ascending)
	if s.Nav() != OpenAt("2024-01-03") {
		t.Fatalf("nav = %+v, want Open(2024-01-03) after reorder", s.Nav())
	}
	// Aurora sorts first by title.
	if pos, n := s.Position(); pos != 1 || n != 3 {
		t.Fatalf("Position = %d/%d, want 1/3", pos, n)
	}
	if s.HasPrev() || !s.HasNext() {
		t.Fatalf("HasPrev/HasNext = %v/%v, want false/true", s.HasPrev(), s.HasNext())
	}
	s = s.Next()
	rec, ok := s.Current()
	if !ok || rec.Title != "Comet" {
		t.Fatalf("Current after next = %+v, want Comet", rec)
	}
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	s := loadedState()
	open := s.Select("2024-01-02")
	_ = open.WithSearch("nebula").Next().ToggleViewMode()

	if open.Nav() != OpenAt("2024-01-02") || open.Len() != 3 || open.ViewMode() != ViewList {
		t.Fatalf("receiver changed: nav=%+v len=%d view=%s", open.Nav(), open.Len(), open.ViewMode())
	}
	if s.Nav() != Closed() {
		t.Fatalf("original state nav = %+v, want Closed", s.Nav())
	}
}

func TestState_NewCollectionResetsNavigationButKeepsPreferences(t *testing.T) {
	s := loadedState().
		WithSearch("o").
		WithSortProperty(SortByTitle).
		ToggleViewMode().
		Select("2024-01-02")

	s = s.WithCollection([]apod.Record{
		{Title: "Orion", Date: "2024-02-01"},
		{Title: "Moon", Date: "2024-02-02"},
	})
	if s.Nav() != Closed() {
		t.Fatalf("nav = %+v, want Closed after new collection", s.Nav())
	}
	q := s.Query()
	if q.Search != "o" || q.Property != SortByTitle || s.ViewMode() != ViewGallery {
		t.Fatalf("preferences reset: query=%+v view=%s", q, s.ViewMode())
	}
	if got := dates(s.Records()); len(got) != 2 || got[0] != "2024-02-01" {
		t.Fatalf("derived = %v, want Orion then Moon", got)
	}
}

func TestState_DeepLinkBeforeFetch(t *testing.T) {
	s := NewState().Navigate(OpenAt("2024-01-02"))
	if s.Nav() != NotFoundAt("2024-01-02") || s.Pending() != "2024-01-02" {
		t.Fatalf("nav = %+v pending=%q, want NotFound with pending key", s.Nav(), s.Pending())
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("Current returned a record before any collection")
	}

	s = s.WithCollection(sampleRecords())
	if s.Nav() != OpenAt("2024-01-02") || s.Pending() != "" {
		t.Fatalf("nav = %+v pending=%q, want Open(2024-01-02)", s.Nav(), s.Pending())
	}

	missing := NewState().Navigate(OpenAt("1999-01-01")).WithCollection(sampleRecords())
	if missing.Nav() != NotFoundAt("1999-01-01") {
		t.Fatalf("nav = %+v, want NotFound for a key outside the collection", missing.Nav())
	}
	if missing.Close().Nav() != Closed() {
		t.Fatalf("close from NotFound did not return to list")
	}
}

func TestState_NavigateAfterLoad(t *testing.T) {
	s := loadedState()
	if got := s.Navigate(OpenAt("2024-01-03")).Nav(); got != OpenAt("2024-01-03") {
		t.Fatalf("Navigate = %+v, want Open", got)
	}
	if got := s.Navigate(OpenAt("2030-01-01")).Nav(); got != NotFoundAt("2030-01-01") {
		t.Fatalf("Navigate unknown = %+v, want NotFound", got)
	}
	if got := s.Select("2024-01-03").Navigate(Closed()).Nav(); got != Closed() {
		t.Fatalf("Navigate(Closed) = %+v, want Closed", got)
	}
}

func TestState_NavigateToFilteredOutKeyCloses(t *testing.T) {
	s := loadedState().WithSearch("comet")
	if s.IndexOf("2024-01-01") >= 0 || !s.InCollection("2024-01-01") {
		t.Fatalf("fixture: 2024-01-01 should be loaded but filtered out")
	}

	s = s.Select("2024-01-02").Navigate(OpenAt("2024-01-01"))
	if s.Nav() != Closed() {
		t.Fatalf("nav = %+v, want Closed for a loaded key outside the derived list", s.Nav())
	}

	s = s.WithSearch("")
	if s.Nav() != Closed() {
		t.Fatalf("nav after clearing search = %+v, want Closed", s.Nav())
	}
	if got := s.Navigate(OpenAt("2024-01-01")).Nav(); got != OpenAt("2024-01-01") {
		t.Fatalf("Navigate after clearing search = %+v, want Open", got)
	}
}

func TestState_DeepLinkFilteredOutByPersistedSearch(t *testing.T) {
	s := NewState().WithSearch("comet").Navigate(OpenAt("2024-01-01")).WithCollection(sampleRecords())
	if s.Nav() != Closed() || s.Pending() != "" {
		t.Fatalf("nav = %+v pending=%q, want Closed for a loaded but filtered key", s.Nav(), s.Pending())
	}
}

func TestState_NotFoundSurvivesRederive(t *testing.T) {
	s := loadedState().Navigate(OpenAt("1999-01-01")).WithSearch("moon").ToggleSortOrder()
	if s.Nav() != NotFoundAt("1999-01-01") {
		t.Fatalf("nav = %+v, want NotFound to stay for a key outside the collection", s.Nav())
	}
}
