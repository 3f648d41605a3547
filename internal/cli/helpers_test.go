package cli

import (
	"fmt"
	"testing"

	"github.com/valter-silva-au/daystack/internal/core"
	"github.com/valter-silva-au/daystack/internal/storage"
	"github.com/valter-silva-au/daystack/pkg/models"
)

// withTestStore wires the package store to real file records under a temp
// dir, restoring the previous wiring on cleanup.
func withTestStore(t *testing.T) core.Store {
	t.Helper()

	prev := Store
	seq := 0
	store := core.NewStore(storage.NewRecordManager(t.TempDir()), nil, core.StoreOptions{
		NewID: func() string {
			seq++
			return fmt.Sprintf("task-%03d-0000-0000-000000000000", seq)
		},
	})
	Store = store
	t.Cleanup(func() { Store = prev })
	return store
}

func TestParseBucket(t *testing.T) {
	cases := []struct {
		in      string
		want    models.Bucket
		wantErr bool
	}{
		{"today", models.BucketToday, false},
		{"Today", models.BucketToday, false},
		{" today ", models.BucketToday, false},
		{"thisweek", models.BucketThisWeek, false},
		{"this-week", models.BucketThisWeek, false},
		{"week", models.BucketThisWeek, false},
		{"someday", models.BucketSomeday, false},
		{"later", models.BucketSomeday, false},
		{"tomorrow", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := parseBucket(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseBucket(%q): expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseBucket(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseBucket(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestResolveIDUniquePrefix(t *testing.T) {
	store := withTestStore(t)
	store.AddTask("write report", models.BucketToday)
	store.AddTask("water plants", models.BucketSomeday)

	id, found := resolveID("task-001")
	if !found {
		t.Fatal("unique prefix should resolve")
	}
	if id != "task-001-0000-0000-000000000000" {
		t.Errorf("resolved wrong id: %s", id)
	}
}

func TestResolveIDNoMatch(t *testing.T) {
	store := withTestStore(t)
	store.AddTask("write report", models.BucketToday)

	if _, found := resolveID("zzz"); found {
		t.Error("unknown prefix must not resolve")
	}
}

func TestResolveIDAmbiguousPrefix(t *testing.T) {
	store := withTestStore(t)
	store.AddTask("one", models.BucketToday)
	store.AddTask("two", models.BucketToday)

	if _, found := resolveID("task-"); found {
		t.Error("ambiguous prefix must not resolve")
	}
}

func TestResolveIDEmpty(t *testing.T) {
	withTestStore(t)

	if _, found := resolveID("  "); found {
		t.Error("blank input must not resolve")
	}
}

func TestResolveIDIgnoresCompletedTasks(t *testing.T) {
	store := withTestStore(t)
	store.AddTask("done already", models.BucketToday)
	store.CompleteTask("task-001-0000-0000-000000000000")

	if _, found := resolveID("task-001"); found {
		t.Error("completed tasks are not addressable by prefix")
	}
}

func TestDecisionFromFlags(t *testing.T) {
	cases := []struct {
		carry, week, cancel bool
		want                models.Decision
		chosen              bool
	}{
		{true, false, false, models.DecisionCarryOver, true},
		{false, true, false, models.DecisionClearToThisWeek, true},
		{false, false, true, models.DecisionCancel, true},
		{true, true, true, models.DecisionCarryOver, true},
		{false, false, false, "", false},
	}

	for _, tc := range cases {
		got, chosen := decisionFromFlags(tc.carry, tc.week, tc.cancel)
		if chosen != tc.chosen || got != tc.want {
			t.Errorf("decisionFromFlags(%v, %v, %v) = (%q, %v), want (%q, %v)",
				tc.carry, tc.week, tc.cancel, got, chosen, tc.want, tc.chosen)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abcdefghijkl"); got != "abcdefgh" {
		t.Errorf("expected abcdefgh, got %s", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("short ids pass through, got %s", got)
	}
}
