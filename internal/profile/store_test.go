package profile

import (
	"errors"
	"strings"
	"testing"

	"envscope/internal/envscope"
	tu "envscope/internal/testutil"
)

func TestProfiles_SaveLoad_AddRemove(t *testing.T) {
	tu.ConfigHome(t)

	// initial load
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty catalog, got %v", got)
	}

	// save normalizes keys and drops empty names
	if err := Save(Catalog{"fp16": {"accelerate_mixed_precision": "fp16"}, " ": {"X": "1"}}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err = Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 1 || got["fp16"]["ACCELERATE_MIXED_PRECISION"] != "fp16" {
		t.Fatalf("unexpected catalog after save+load: %v", got)
	}

	created, err := Add("fp16", Profile{"accelerate_use_cpu": "true"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if created {
		t.Fatalf("expected merge into existing profile")
	}
	created, err = Add("debug", Profile{"ACCELERATE_DEBUG_MODE": "1"})
	if err != nil || !created {
		t.Fatalf("Add new profile: created=%v err=%v", created, err)
	}
	p, err := Get("fp16")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(p) != 2 || p["ACCELERATE_USE_CPU"] != "true" {
		t.Fatalf("unexpected merged profile: %v", p)
	}

	removed, missing, err := Remove([]string{" debug", "nope", "debug ", ""})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if len(removed) != 1 || removed[0] != "debug" || len(missing) != 1 || missing[0] != "nope" {
		t.Fatalf("unexpected removed/missing: %v / %v", removed, missing)
	}

	final, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if names := final.Names(); len(names) != 1 || names[0] != "fp16" {
		t.Fatalf("unexpected final profiles: %v", names)
	}
}

func TestGet_SuggestsCloseNames(t *testing.T) {
	tu.ConfigHome(t)
	if err := Save(Catalog{"mixed-fp16": {"A": "1"}, "mixed-bf16": {"A": "2"}, "cpu": {"B": "1"}}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	_, err := Get("fp16")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "mixed-fp16") {
		t.Fatalf("expected suggestion in %q", err)
	}
	_, err = Get("zzz")
	if !errors.Is(err, ErrNotFound) || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("unexpected error for unrelated name: %v", err)
	}
}

func TestAdd_RejectsBadInput(t *testing.T) {
	tu.ConfigHome(t)
	if _, err := Add("  ", Profile{"A": "1"}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := Add("p", Profile{"A=B": "1"}); !errors.Is(err, envscope.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := ParseAssignments([]string{"aa=1", "Url=http://x?a=b", "EMPTY="})
	if err != nil {
		t.Fatalf("ParseAssignments error: %v", err)
	}
	if got["AA"] != "1" || got["URL"] != "http://x?a=b" || got["EMPTY"] != "" || len(got) != 3 {
		t.Fatalf("unexpected assignments: %v", got)
	}
	if _, err := ParseAssignments([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
}

func TestProfileVars(t *testing.T) {
	v := Profile{"A": "1"}.Vars()
	if v["A"] != "1" {
		t.Fatalf("unexpected vars: %v", v)
	}
}
