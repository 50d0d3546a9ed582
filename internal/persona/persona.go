// Package persona holds teacher persona descriptors and the catalog the
// interactive session and chat pick from. A persona is pure flavor: it never
// changes scoring, only how generated content and chat turns are voiced.
package persona

import (
	"fmt"
	"strings"
)

// Slot identifiers for a generated persona set. Every set carries exactly
// these five, in this order.
var Slots = []string{"teacher1", "teacher2", "teacher3", "teacher4", "teacher5"}

// ExampleBehavior illustrates how a persona behaves in practice. Introduction
// is always present; the other fields are optional flavor and each persona
// tends to populate a different subset.
type ExampleBehavior struct {
	Introduction string `json:"introduction"`
	RewardSystem string `json:"reward_system,omitempty"`
	Challenge    string `json:"challenge,omitempty"`
	Reflection   string `json:"reflection,omitempty"`
	Bonus        string `json:"bonus,omitempty"`
}

// Descriptor describes a single teacher persona.
type Descriptor struct {
	Name            string          `json:"name"`
	Personality     string          `json:"personality"`
	TeachingStyle   string          `json:"teaching_style"`
	SignatureTrait  string          `json:"signature_trait"`
	ExampleBehavior ExampleBehavior `json:"example_behavior"`
}

// Set is one generated persona set: exactly five descriptors, one per slot.
type Set struct {
	Teacher1 Descriptor `json:"teacher1"`
	Teacher2 Descriptor `json:"teacher2"`
	Teacher3 Descriptor `json:"teacher3"`
	Teacher4 Descriptor `json:"teacher4"`
	Teacher5 Descriptor `json:"teacher5"`
}

// BySlot returns the descriptor for a slot id and whether the slot exists.
func (s *Set) BySlot(id string) (Descriptor, bool) {
	switch id {
	case "teacher1":
		return s.Teacher1, true
	case "teacher2":
		return s.Teacher2, true
	case "teacher3":
		return s.Teacher3, true
	case "teacher4":
		return s.Teacher4, true
	case "teacher5":
		return s.Teacher5, true
	}
	return Descriptor{}, false
}

// All returns the descriptors in slot order.
func (s *Set) All() []Descriptor {
	return []Descriptor{s.Teacher1, s.Teacher2, s.Teacher3, s.Teacher4, s.Teacher5}
}

// NotFoundError reports an unknown persona id or name.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("persona %q not found", e.ID)
}

// Describe flattens a descriptor into the prose form embedded in quest and
// chat prompts.
func Describe(d Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Teacher Name: %s\n", d.Name)
	fmt.Fprintf(&b, "Personality: %s\n", d.Personality)
	fmt.Fprintf(&b, "Teaching Style: %s\n", d.TeachingStyle)
	fmt.Fprintf(&b, "Signature Trait: %s\n", d.SignatureTrait)
	b.WriteString("Example Behavior:\n")
	fmt.Fprintf(&b, "    Introduction: %s\n", d.ExampleBehavior.Introduction)
	if d.ExampleBehavior.RewardSystem != "" {
		fmt.Fprintf(&b, "    Reward System: %s\n", d.ExampleBehavior.RewardSystem)
	}
	if d.ExampleBehavior.Challenge != "" {
		fmt.Fprintf(&b, "    Challenge: %s\n", d.ExampleBehavior.Challenge)
	}
	if d.ExampleBehavior.Reflection != "" {
		fmt.Fprintf(&b, "    Reflection: %s\n", d.ExampleBehavior.Reflection)
	}
	if d.ExampleBehavior.Bonus != "" {
		fmt.Fprintf(&b, "    Bonus: %s\n", d.ExampleBehavior.Bonus)
	}
	return b.String()
}
