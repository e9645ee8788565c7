package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinFromRoot(t *testing.T) {
	assert.Equal(t, Path("/pattern"), Join("", "pattern"))
}

func TestJoinAppendsMultipleSegments(t *testing.T) {
	assert.Equal(t, Path("/alternatives/0/elements/3"), Join("/alternatives", "0", "elements", "3"))
}

func TestSegmentsOfRootIsEmpty(t *testing.T) {
	assert.Empty(t, Segments(""))
}

func TestSegmentsSplitsPath(t *testing.T) {
	assert.Equal(t, []string{"alternatives", "0", "elements", "3"}, Segments("/alternatives/0/elements/3"))
}

func TestSliceDropsLeadingSegments(t *testing.T) {
	assert.Equal(t, Path("/elements/3"), Slice("/alternatives/0/elements/3", 2))
}

func TestSliceBeyondLengthIsRoot(t *testing.T) {
	assert.Equal(t, Path(""), Slice("/alternatives/0", 5))
}

func TestCommonPrefixLen(t *testing.T) {
	a := Path("/alternatives/0/elements/3")
	b := Path("/alternatives/0/elements/1")
	assert.Equal(t, 3, CommonPrefixLen(a, b))
}

func TestCommonPrefixLenDisjoint(t *testing.T) {
	assert.Equal(t, 0, CommonPrefixLen("/pattern", "/flags"))
}
