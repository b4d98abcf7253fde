package convert

// Five-element relationship types. The cycle is load-bearing for scoring
// and compatibility and must stay exact: generative order Wood→Fire→Earth→
// Metal→Water→Wood; each element destroys the one two steps ahead.
const (
	RelationGenerative  = "generative"
	RelationDestructive = "destructive"
	RelationSupportive  = "supportive"
	RelationWeakening   = "weakening"
	RelationNeutral     = "neutral"
)

func elementIndex(e string) int {
	for i, name := range FiveElements {
		if name == e {
			return i
		}
	}
	return -1
}

// ElementRelation classifies the directed relation from element a to b:
// supportive (same), generative (a feeds b), weakening (b feeds a, draining
// it), destructive (a destroys b or b destroys a), else neutral.
func ElementRelation(a, b string) string {
	ia, ib := elementIndex(a), elementIndex(b)
	if ia < 0 || ib < 0 {
		return RelationNeutral
	}
	switch {
	case ia == ib:
		return RelationSupportive
	case (ia+1)%5 == ib:
		return RelationGenerative
	case (ib+1)%5 == ia:
		return RelationWeakening
	case (ia+2)%5 == ib, (ib+2)%5 == ia:
		return RelationDestructive
	}
	return RelationNeutral
}

// ElementRelationDescription renders the relation in plain words.
func ElementRelationDescription(a, b, relation string) string {
	switch relation {
	case RelationSupportive:
		return a + " and " + b + " share the same nature and reinforce each other."
	case RelationGenerative:
		return a + " generates " + b + ", a nourishing relationship."
	case RelationWeakening:
		return b + " generates " + a + ", which drains " + b + " over time."
	case RelationDestructive:
		return a + " and " + b + " sit on the destruction cycle and clash."
	default:
		return a + " and " + b + " have no direct relationship."
	}
}

// GenerativeNext returns the element the given element generates.
func GenerativeNext(e string) string {
	i := elementIndex(e)
	if i < 0 {
		return ""
	}
	return FiveElements[(i+1)%5]
}
