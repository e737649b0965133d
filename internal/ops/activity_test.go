package ops

import (
	"testing"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/history"
)

func TestRecentActivity_Empty(t *testing.T) {
	env, _ := testEnv(t)

	output, err := RecentActivity(env, ActivityInput{})
	if err != nil {
		t.Fatalf("RecentActivity failed: %v", err)
	}
	if output.Count != 0 {
		t.Errorf("Count = %d, want 0", output.Count)
	}
	if output.Items == nil {
		t.Error("Items = nil, want empty slice")
	}
}

func TestRecentActivity_LimitBounds(t *testing.T) {
	env, _ := testEnv(t)
	for i := 0; i < 3; i++ {
		if _, err := history.Record(env.DB, history.KindCopy, "shot.png", ""); err != nil {
			t.Fatal(err)
		}
	}

	output, err := RecentActivity(env, ActivityInput{Limit: 2})
	if err != nil {
		t.Fatalf("RecentActivity failed: %v", err)
	}
	if output.Count != 2 {
		t.Errorf("Count = %d, want 2", output.Count)
	}

	// Zero limit gets the default.
	output, err = RecentActivity(env, ActivityInput{})
	if err != nil {
		t.Fatalf("RecentActivity failed: %v", err)
	}
	if output.Count != 3 {
		t.Errorf("Count = %d, want 3", output.Count)
	}
}

func TestRecentActivity_NilJournal(t *testing.T) {
	env, _ := testEnv(t)
	env.DB = nil

	_, err := RecentActivity(env, ActivityInput{})
	if !errors.Is(err, errors.ErrInternal) {
		t.Errorf("error = %v, want INTERNAL", err)
	}
}
