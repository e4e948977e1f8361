package domain

// ContentType classifies a search result. The set is closed: the
// platform's search service only emits these values. Unrecognised
// values still flow through the pipeline and resolve to the generic
// search page.
type ContentType string

// The content types emitted by the search service.
const (
	ContentTypeCourse       ContentType = "course"
	ContentTypeLesson       ContentType = "lesson"
	ContentTypePost         ContentType = "post"
	ContentTypeComment      ContentType = "comment"
	ContentTypeUser         ContentType = "user"
	ContentTypeClassroom    ContentType = "classroom"
	ContentTypeGroup        ContentType = "group"
	ContentTypeNote         ContentType = "note"
	ContentTypeQuiz         ContentType = "quiz"
	ContentTypeTutor        ContentType = "tutor"
	ContentTypeAnnouncement ContentType = "announcement"
)

// AllContentTypes lists the closed set in display order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeCourse,
		ContentTypeLesson,
		ContentTypePost,
		ContentTypeComment,
		ContentTypeUser,
		ContentTypeClassroom,
		ContentTypeGroup,
		ContentTypeNote,
		ContentTypeQuiz,
		ContentTypeTutor,
		ContentTypeAnnouncement,
	}
}

// IsValid returns true if the content type belongs to the closed set.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeCourse, ContentTypeLesson, ContentTypePost,
		ContentTypeComment, ContentTypeUser, ContentTypeClassroom,
		ContentTypeGroup, ContentTypeNote, ContentTypeQuiz,
		ContentTypeTutor, ContentTypeAnnouncement:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ContentType) String() string {
	return string(c)
}

// Category groups content types for context filtering and display.
type Category string

// Available categories.
const (
	CategoryLearning  Category = "learning"
	CategoryCommunity Category = "community"
	CategoryTeaching  Category = "teaching"
	CategorySystem    Category = "system"
)

// ContentTypeInfo describes how a content type is presented.
type ContentTypeInfo struct {
	// Label is the human-readable display name.
	Label string

	// Description provides a brief explanation of the type.
	Description string

	// Color is the accent colour name used by consumers.
	Color string

	// Icon is the display glyph.
	Icon string

	// Category groups the type for context filtering.
	Category Category
}

var contentTypeInfo = map[ContentType]ContentTypeInfo{
	ContentTypeCourse: {
		Label:       "Course",
		Description: "Online course content",
		Color:       "blue",
		Icon:        "📚",
		Category:    CategoryLearning,
	},
	ContentTypeLesson: {
		Label:       "Lesson",
		Description: "Individual lesson within a course",
		Color:       "green",
		Icon:        "🎯",
		Category:    CategoryLearning,
	},
	ContentTypePost: {
		Label:       "Post",
		Description: "Community discussion post",
		Color:       "purple",
		Icon:        "💬",
		Category:    CategoryCommunity,
	},
	ContentTypeComment: {
		Label:       "Comment",
		Description: "Comment on a post",
		Color:       "indigo",
		Icon:        "💭",
		Category:    CategoryCommunity,
	},
	ContentTypeUser: {
		Label:       "User",
		Description: "User profile",
		Color:       "yellow",
		Icon:        "👤",
		Category:    CategoryCommunity,
	},
	ContentTypeClassroom: {
		Label:       "Classroom",
		Description: "Virtual classroom",
		Color:       "red",
		Icon:        "🏫",
		Category:    CategoryTeaching,
	},
	ContentTypeGroup: {
		Label:       "Group",
		Description: "Study group or community",
		Color:       "pink",
		Icon:        "👥",
		Category:    CategoryCommunity,
	},
	ContentTypeNote: {
		Label:       "Note",
		Description: "Study notes",
		Color:       "gray",
		Icon:        "📝",
		Category:    CategoryLearning,
	},
	ContentTypeQuiz: {
		Label:       "Quiz",
		Description: "Interactive quiz or assessment",
		Color:       "orange",
		Icon:        "❓",
		Category:    CategoryLearning,
	},
	ContentTypeTutor: {
		Label:       "Tutor",
		Description: "Tutor profile",
		Color:       "cyan",
		Icon:        "👨‍🏫",
		Category:    CategoryTeaching,
	},
	ContentTypeAnnouncement: {
		Label:       "Announcement",
		Description: "System or course announcement",
		Color:       "emerald",
		Icon:        "📢",
		Category:    CategorySystem,
	},
}

// Info returns presentation metadata for the content type.
// Unrecognised types get a generic "Unknown" entry rather than an error.
func (c ContentType) Info() ContentTypeInfo {
	if info, ok := contentTypeInfo[c]; ok {
		return info
	}
	return ContentTypeInfo{
		Label:       "Unknown",
		Description: "Unknown content type",
		Color:       "gray",
		Icon:        "❓",
		Category:    CategorySystem,
	}
}
