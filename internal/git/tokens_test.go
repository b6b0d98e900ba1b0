package git

import (
	"slices"
	"testing"
)

func TestStateTokens(t *testing.T) {
	t.Parallel()

	const commit = "0123456789abcdef0123456789abcdef01234567"
	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{
			name:  "clean_no_upstream",
			state: State{Commit: commit, Branch: &Branch{Name: "main", Tracking: NoUpstream()}},
			want:  []string{"main", GlyphNoUpstream},
		},
		{
			name:  "in_sync",
			state: State{Commit: commit, Branch: &Branch{Name: "main", Tracking: Divergence(0, 0)}},
			want:  []string{"main", GlyphInSync},
		},
		{
			name:  "ahead_and_behind_dirty",
			state: State{Commit: commit, Branch: &Branch{Name: "main", Tracking: Divergence(2, 1)}, Changes: 3},
			want:  []string{"main", "2↑ 1↓", "±3"},
		},
		{
			name:  "ahead_only",
			state: State{Commit: commit, Branch: &Branch{Name: "feature/x", Tracking: Divergence(4, 0)}},
			want:  []string{"feature/x", "4↑"},
		},
		{
			name:  "behind_only",
			state: State{Commit: commit, Branch: &Branch{Name: "main", Tracking: Divergence(0, 12)}},
			want:  []string{"main", "12↓"},
		},
		{
			name:  "detached_has_no_tracking_token",
			state: State{Commit: commit, Changes: 1},
			want:  []string{"0123456", "±1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.state.Tokens(); !slices.Equal(got, tt.want) {
				t.Fatalf("Tokens() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrackingTokensAreDistinct(t *testing.T) {
	t.Parallel()

	inSync := Divergence(0, 0).Token()
	noUpstream := NoUpstream().Token()
	diverged := Divergence(1, 1).Token()
	if inSync == noUpstream || inSync == diverged || noUpstream == diverged {
		t.Fatalf("tracking tokens not distinct: %q %q %q", inSync, noUpstream, diverged)
	}
}
