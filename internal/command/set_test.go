package command

import (
	"context"
	"strings"
	"testing"
)

func TestSetCommandUpdatesPages(t *testing.T) {
	deps, out := newTestDeps(&fakeSearcher{})
	session := testSession()

	cmd := NewSetCommand(deps)
	if err := cmd.Execute(context.Background(), session, []string{"pages", "8"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if session.Pages != 8 {
		t.Fatalf("expected pages 8, got %d", session.Pages)
	}
	if len(out.messages) != 1 || !strings.Contains(out.messages[0], "pages set to 8") {
		t.Fatalf("expected confirmation, got %v", out.messages)
	}
}

func TestSetCommandRejectsOutOfRangeValues(t *testing.T) {
	cases := [][]string{
		{"pages", "0"},
		{"pages", "11"},
		{"pages", "abc"},
		{"delay", "-1"},
		{"delay", "61"},
	}

	for _, args := range cases {
		deps, out := newTestDeps(&fakeSearcher{})
		session := testSession()

		cmd := NewSetCommand(deps)
		if err := cmd.Execute(context.Background(), session, args); err != nil {
			t.Fatalf("args %v: expected rejection via PrintError, got %v", args, err)
		}

		if len(out.errors) != 1 {
			t.Fatalf("args %v: expected one validation message, got %v", args, out.errors)
		}
		if session.Pages != 3 || session.DelaySeconds != 5 {
			t.Fatalf("args %v: expected settings unchanged, got pages=%d delay=%d", args, session.Pages, session.DelaySeconds)
		}
	}
}

func TestSetCommandAcceptsBoundaryValues(t *testing.T) {
	cases := []struct {
		args      []string
		wantPages int
		wantDelay int
	}{
		{[]string{"pages", "1"}, 1, 5},
		{[]string{"pages", "10"}, 10, 5},
		{[]string{"delay", "0"}, 3, 0},
		{[]string{"delay", "60"}, 3, 60},
	}

	for _, c := range cases {
		deps, out := newTestDeps(&fakeSearcher{})
		session := testSession()

		cmd := NewSetCommand(deps)
		if err := cmd.Execute(context.Background(), session, c.args); err != nil {
			t.Fatalf("args %v: expected no error, got %v", c.args, err)
		}

		if len(out.errors) != 0 {
			t.Fatalf("args %v: expected boundary value accepted, got %v", c.args, out.errors)
		}
		if session.Pages != c.wantPages || session.DelaySeconds != c.wantDelay {
			t.Fatalf("args %v: expected pages=%d delay=%d, got pages=%d delay=%d",
				c.args, c.wantPages, c.wantDelay, session.Pages, session.DelaySeconds)
		}
	}
}

func TestSetCommandUpdatesSiteFilter(t *testing.T) {
	deps, _ := newTestDeps(&fakeSearcher{})
	session := testSession()

	cmd := NewSetCommand(deps)
	if err := cmd.Execute(context.Background(), session, []string{"site", "site:linkedin.com/pub"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if session.SiteFilter != "linkedin.com/pub" {
		t.Fatalf("expected normalized site filter, got %q", session.SiteFilter)
	}
}

func TestSetCommandShowsCurrentSettings(t *testing.T) {
	deps, out := newTestDeps(&fakeSearcher{})
	session := testSession()

	cmd := NewSetCommand(deps)
	if err := cmd.Execute(context.Background(), session, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(out.messages) != 1 {
		t.Fatalf("expected one settings block, got %v", out.messages)
	}
	settings := out.messages[0]
	for _, want := range []string{"pages: 3", "delay: 5s", "site:  linkedin.com/in"} {
		if !strings.Contains(settings, want) {
			t.Fatalf("expected %q in settings output, got %q", want, settings)
		}
	}
}

func TestSetCommandRejectsUnknownKey(t *testing.T) {
	deps, out := newTestDeps(&fakeSearcher{})

	cmd := NewSetCommand(deps)
	if err := cmd.Execute(context.Background(), testSession(), []string{"quota", "5"}); err != nil {
		t.Fatalf("expected rejection via PrintError, got %v", err)
	}

	if len(out.errors) != 1 || !strings.Contains(out.errors[0], "unknown setting") {
		t.Fatalf("expected unknown-setting message, got %v", out.errors)
	}
}
