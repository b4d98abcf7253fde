package convert

import "testing"

func TestElementRelation_CycleExact(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		// Generative order: Wood -> Fire -> Earth -> Metal -> Water -> Wood.
		{ElementWood, ElementFire, RelationGenerative},
		{ElementFire, ElementEarth, RelationGenerative},
		{ElementEarth, ElementMetal, RelationGenerative},
		{ElementMetal, ElementWater, RelationGenerative},
		{ElementWater, ElementWood, RelationGenerative},
		// The reverse direction drains.
		{ElementFire, ElementWood, RelationWeakening},
		{ElementWood, ElementWater, RelationWeakening},
		// Same element reinforces.
		{ElementWood, ElementWood, RelationSupportive},
		{ElementWater, ElementWater, RelationSupportive},
		// Destruction skips one step, in either direction.
		{ElementWood, ElementEarth, RelationDestructive},
		{ElementEarth, ElementWood, RelationDestructive},
		{ElementFire, ElementMetal, RelationDestructive},
		{ElementMetal, ElementWood, RelationDestructive},
		{ElementWater, ElementFire, RelationDestructive},
	}
	for _, c := range cases {
		if got := ElementRelation(c.a, c.b); got != c.want {
			t.Errorf("ElementRelation(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestElementRelation_EveryPairClassified(t *testing.T) {
	// With five elements, every ordered pair lands on a non-neutral relation;
	// neutral only appears for unknown element names.
	for _, a := range FiveElements {
		for _, b := range FiveElements {
			if got := ElementRelation(a, b); got == RelationNeutral {
				t.Errorf("ElementRelation(%s, %s) unexpectedly neutral", a, b)
			}
		}
	}
	if ElementRelation("Plasma", ElementFire) != RelationNeutral {
		t.Fatalf("unknown element should be neutral")
	}
}

func TestGenerativeNext(t *testing.T) {
	want := map[string]string{
		ElementWood:  ElementFire,
		ElementFire:  ElementEarth,
		ElementEarth: ElementMetal,
		ElementMetal: ElementWater,
		ElementWater: ElementWood,
	}
	for e, next := range want {
		if got := GenerativeNext(e); got != next {
			t.Errorf("GenerativeNext(%s) = %s, want %s", e, got, next)
		}
	}
	if GenerativeNext("Plasma") != "" {
		t.Fatalf("unknown element should generate nothing")
	}
}

func TestElementRelationDescription(t *testing.T) {
	for _, rel := range []string{
		RelationSupportive, RelationGenerative, RelationWeakening, RelationDestructive, RelationNeutral,
	} {
		if desc := ElementRelationDescription(ElementWood, ElementFire, rel); desc == "" {
			t.Errorf("empty description for relation %s", rel)
		}
	}
}
