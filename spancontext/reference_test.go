package spancontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefKindString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("child-of", RefChildOf.String())
	assert.Equal("follows-from", RefFollowsFrom.String())
	assert.Equal("*invalid*", RefKind(93).String())
}

func TestReferenceHelpers(t *testing.T) {
	var (
		assert = assert.New(t)
		ctx    = NewBasicContext(1, 2, true, nil)
	)

	child := ChildOf(ctx)
	assert.Equal(RefChildOf, child.Kind)
	assert.Equal(ctx, child.Context)

	follows := FollowsFrom(ctx)
	assert.Equal(RefFollowsFrom, follows.Kind)
	assert.Equal(ctx, follows.Context)
}
