package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"webcheck/css"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{"nav", "nav"},
		{"NAV", "nav"},
		{"nav ul > li.active:hover", "li"},
		{"header::before", "header"},
		{".card", ""},
		{"#main", ""},
		{"*", ""},
		{"body > *", ""},
		{"section#intro.wide", "section"},
		{"a[href~='x y']", "a"},
		{"article + aside", "aside"},
		{"h1 ~ p", "p"},
		{"div:not(.a > b)", "div"},
		{"svg|rect", "rect"},
		{"  footer  ", "footer"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := css.Subject(tt.selector); got != tt.want {
			t.Errorf("Subject(%q) = %q, want %q", tt.selector, got, tt.want)
		}
	}
}

func TestSubjects(t *testing.T) {
	got := css.Subjects("header, .x, nav a, section:first-child")
	want := []string{"header", "a", "section"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Subjects mismatch (-want +got):\n%s", diff)
	}
}

func TestTargets(t *testing.T) {
	if !css.Targets("h1,nav", "nav") {
		t.Error("expected nav to be targeted")
	}
	if css.Targets("nav a", "nav") {
		t.Error("descendant selector must not target ancestor")
	}
	if css.Targets(".nav", "nav") {
		t.Error("class selector must not target element")
	}
}
