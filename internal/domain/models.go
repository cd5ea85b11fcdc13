package domain

import (
	"fmt"
	"strings"
)

// HighlightTarget identifies a zone of the workflow diagram a step points at
type HighlightTarget int

const (
	WorkingTree HighlightTarget = iota
	StagingArea
	LocalBranch
	RemoteTrackingRef
	RemoteBranch
	Pull
	Checkout
	MergeRebase
)

var targetNames = [...]string{
	WorkingTree:       "working-tree",
	StagingArea:       "staging-area",
	LocalBranch:       "local-branch",
	RemoteTrackingRef: "remote-tracking-ref",
	RemoteBranch:      "remote-branch",
	Pull:              "pull",
	Checkout:          "checkout",
	MergeRebase:       "merge-rebase",
}

var targetLabels = [...]string{
	WorkingTree:       "working tree",
	StagingArea:       "staging area",
	LocalBranch:       "local branch",
	RemoteTrackingRef: "remote-tracking ref",
	RemoteBranch:      "remote branch",
	Pull:              "git pull",
	Checkout:          "git checkout",
	MergeRebase:       "git merge/rebase",
}

// Commands of the transition arrows. Box-only zones have none.
var targetCommands = [...]string{
	StagingArea:       "git add",
	LocalBranch:       "git commit",
	RemoteTrackingRef: "git fetch",
	RemoteBranch:      "git push",
	Pull:              "git pull",
	Checkout:          "git checkout",
	MergeRebase:       "git merge/rebase",
}

// AllHighlightTargets returns every target in declaration order
func AllHighlightTargets() []HighlightTarget {
	return []HighlightTarget{
		WorkingTree,
		StagingArea,
		LocalBranch,
		RemoteTrackingRef,
		RemoteBranch,
		Pull,
		Checkout,
		MergeRebase,
	}
}

// Valid reports whether t is one of the declared targets
func (t HighlightTarget) Valid() bool {
	return t >= WorkingTree && t <= MergeRebase
}

func (t HighlightTarget) String() string {
	if !t.Valid() {
		return fmt.Sprintf("HighlightTarget(%d)", int(t))
	}
	return targetNames[t]
}

// Label is the human readable name used in the diagram
func (t HighlightTarget) Label() string {
	if !t.Valid() {
		return t.String()
	}
	return targetLabels[t]
}

// Command returns the git command of the arrow that selects t, if any
func (t HighlightTarget) Command() string {
	if !t.Valid() {
		return ""
	}
	return targetCommands[t]
}

// Ordinal is the 1-based position used for keyboard shortcuts
func (t HighlightTarget) Ordinal() int {
	return int(t) + 1
}

// HighlightTargetFromOrdinal is the inverse of Ordinal
func HighlightTargetFromOrdinal(n int) (HighlightTarget, bool) {
	t := HighlightTarget(n - 1)
	return t, t.Valid()
}

// ParseHighlightTarget parses the text form of a target.
// Matching ignores case and accepts '_' or ' ' in place of '-'.
func ParseHighlightTarget(s string) (HighlightTarget, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, t := range AllHighlightTargets() {
		if targetNames[t] == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown highlight target %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (t HighlightTarget) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid highlight target %d", int(t))
	}
	return []byte(targetNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *HighlightTarget) UnmarshalText(text []byte) error {
	parsed, err := ParseHighlightTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Step is one entry of the guided sequence
type Step struct {
	Emoji        string          `toml:"emoji"`
	Title        string          `toml:"title"`
	Description  string          `toml:"description"`
	Example      string          `toml:"example"`
	CommandLabel string          `toml:"command_label"`
	Command      string          `toml:"command"`
	Highlight    HighlightTarget `toml:"highlight"`
}

// HasCommand reports whether the step carries a command to show
func (s Step) HasCommand() bool {
	return strings.TrimSpace(s.Command) != ""
}
