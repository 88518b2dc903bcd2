package hooks

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"

	"github.com/vk/stepflow/internal/skip"
)

// Property: for any subset of pre-bound hooks and any number of
// ApplyDefaults calls, pre-bound hooks keep their behavior and unset
// hooks end up bound to the defaults.
func TestProperty_ApplyDefaultsNeverRebinds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := skip.NewEngine(&bytes.Buffer{}, &bytes.Buffer{})

		bindStart := rapid.Bool().Draw(t, "bindStart")
		bindSkipStep := rapid.Bool().Draw(t, "bindSkipStep")
		bindGroup := rapid.Bool().Draw(t, "bindGroup")
		bindFail := rapid.Bool().Draw(t, "bindFail")
		applies := rapid.IntRange(1, 4).Draw(t, "applies")

		seen := map[string]int{}
		s := &Set{}
		if bindStart {
			s.StartingStep = func(string) { seen["start"]++ }
		}
		if bindSkipStep {
			s.SkipStepIfAlreadyDone = func(int) skip.Decision { seen["skipStep"]++; return skip.Continue }
		}
		if bindGroup {
			s.StartingGroup = func(string) { seen["group"]++ }
		}
		if bindFail {
			s.ReportFailed = func(...string) error { seen["fail"]++; return nil }
		}

		for i := 0; i < applies; i++ {
			s.ApplyDefaults(engine)
		}

		s.StartingStep("t")
		s.SkipStepIfAlreadyDone(1)
		s.StartingGroup("t")
		s.SkipGroupIfUnnecessary(1)
		_ = s.ReportFailed("t")
		_ = s.PrevCmdFailed(0)
		s.StartingDependents("t")
		s.StartingChecks("t")
		s.SkipRestIfAlreadyDone(1)

		if bindStart && seen["start"] != 1 {
			t.Fatalf("pre-bound StartingStep called %d times, want 1", seen["start"])
		}
		if bindSkipStep && seen["skipStep"] != 1 {
			t.Fatalf("pre-bound SkipStepIfAlreadyDone called %d times, want 1", seen["skipStep"])
		}
		if bindGroup && seen["group"] != 1 {
			t.Fatalf("pre-bound StartingGroup called %d times, want 1", seen["group"])
		}
		if bindFail && seen["fail"] != 1 {
			t.Fatalf("pre-bound ReportFailed called %d times, want 1", seen["fail"])
		}
	})
}
