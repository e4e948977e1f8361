package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContentType_IsValid tests the closed set.
func TestContentType_IsValid(t *testing.T) {
	for _, ct := range AllContentTypes() {
		assert.True(t, ct.IsValid(), "%s should be valid", ct)
	}
	assert.False(t, ContentType("widget").IsValid())
	assert.False(t, ContentType("").IsValid())
}

// TestContentType_Info tests presentation metadata.
func TestContentType_Info(t *testing.T) {
	course := ContentTypeCourse.Info()
	assert.Equal(t, "Course", course.Label)
	assert.Equal(t, CategoryLearning, course.Category)

	tutor := ContentTypeTutor.Info()
	assert.Equal(t, CategoryTeaching, tutor.Category)

	post := ContentTypePost.Info()
	assert.Equal(t, CategoryCommunity, post.Category)

	announcement := ContentTypeAnnouncement.Info()
	assert.Equal(t, CategorySystem, announcement.Category)
}

// TestContentType_InfoUnknown tests the generic fallback entry.
func TestContentType_InfoUnknown(t *testing.T) {
	info := ContentType("widget").Info()

	assert.Equal(t, "Unknown", info.Label)
	assert.Equal(t, CategorySystem, info.Category)
	assert.NotEmpty(t, info.Icon)
}

// TestContentType_InfoCoversAllTypes tests that every member of the
// closed set has real metadata.
func TestContentType_InfoCoversAllTypes(t *testing.T) {
	for _, ct := range AllContentTypes() {
		info := ct.Info()
		assert.NotEqual(t, "Unknown", info.Label, "missing info for %s", ct)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Color)
		assert.NotEmpty(t, info.Icon)
	}
}
