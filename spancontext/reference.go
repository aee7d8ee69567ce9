package spancontext

// RefKind distinguishes how a new span relates to a referenced context.
type RefKind int

const (
	// RefChildOf marks the referenced context as the parent of the new
	// span.
	RefChildOf RefKind = iota

	// RefFollowsFrom marks the new span as causally after, but not a
	// child of, the referenced context.
	RefFollowsFrom
)

func (k RefKind) String() string {
	switch k {
	case RefChildOf:
		return "child-of"
	case RefFollowsFrom:
		return "follows-from"
	default:
		return "*invalid*"
	}
}

// Reference ties a RefKind to an existing context when deriving a new one.
type Reference struct {
	Kind    RefKind
	Context Context
}

// ChildOf builds a child-of reference.
func ChildOf(ctx Context) Reference {
	return Reference{Kind: RefChildOf, Context: ctx}
}

// FollowsFrom builds a follows-from reference.
func FollowsFrom(ctx Context) Reference {
	return Reference{Kind: RefFollowsFrom, Context: ctx}
}
