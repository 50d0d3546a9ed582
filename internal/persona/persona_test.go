package persona

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultSetFillsEverySlot(t *testing.T) {
	set := DefaultSet()
	for _, d := range set.All() {
		if d.Name == "" {
			t.Fatal("default set has a descriptor with an empty name")
		}
		if d.ExampleBehavior.Introduction == "" {
			t.Errorf("persona %q has no introduction", d.Name)
		}
	}
}

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	d, err := c.Get("teacher1")
	if err != nil {
		t.Fatalf("Get(teacher1): %v", err)
	}
	if d.Name != "The Gamemaster Guide" {
		t.Errorf("teacher1 = %q, want The Gamemaster Guide", d.Name)
	}

	_, err = c.Get("teacher9")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get(teacher9) error = %v, want *NotFoundError", err)
	}
	if nf.ID != "teacher9" {
		t.Errorf("NotFoundError.ID = %q, want teacher9", nf.ID)
	}
}

func TestCatalogGetByName(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"The Zen Mentor", "The Zen Mentor", false},
		{"the zen mentor", "The Zen Mentor", false},
		{"THE WITTY COMEDIAN", "The Witty Comedian", false},
		{"Professor Nobody", "", true},
	}

	for _, tt := range tests {
		d, err := c.GetByName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetByName(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetByName(%q): %v", tt.name, err)
			continue
		}
		if d.Name != tt.want {
			t.Errorf("GetByName(%q) = %q, want %q", tt.name, d.Name, tt.want)
		}
	}
}

func TestCatalogListOrder(t *testing.T) {
	c := DefaultCatalog()
	entries := c.List()
	if len(entries) != len(Slots) {
		t.Fatalf("List returned %d entries, want %d", len(entries), len(Slots))
	}
	for i, e := range entries {
		if e.ID != Slots[i] {
			t.Errorf("entry %d has id %q, want %q", i, e.ID, Slots[i])
		}
	}
}

func TestCatalogReplace(t *testing.T) {
	c := DefaultCatalog()

	fresh := DefaultSet()
	fresh.Teacher1.Name = "Captain Calculus"
	c.Replace(fresh)

	d, err := c.Get("teacher1")
	if err != nil {
		t.Fatalf("Get after Replace: %v", err)
	}
	if d.Name != "Captain Calculus" {
		t.Errorf("teacher1 after Replace = %q, want Captain Calculus", d.Name)
	}
}

func TestDescribe(t *testing.T) {
	d := Descriptor{
		Name:           "The Zen Mentor",
		Personality:    "Calm.",
		TeachingStyle:  "Mindful.",
		SignatureTrait: "Soothing.",
		ExampleBehavior: ExampleBehavior{
			Introduction: "Breathe in.",
			Reflection:   "What did you discover?",
		},
	}

	got := Describe(d)

	for _, want := range []string{
		"Teacher Name: The Zen Mentor",
		"Personality: Calm.",
		"Teaching Style: Mindful.",
		"Signature Trait: Soothing.",
		"Introduction: Breathe in.",
		"Reflection: What did you discover?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe output missing %q:\n%s", want, got)
		}
	}

	// Unset optional behaviors stay out of the rendering.
	if strings.Contains(got, "Reward System") || strings.Contains(got, "Bonus") {
		t.Errorf("Describe rendered unset optional fields:\n%s", got)
	}
}
