package domain

// Resolve maps a search result to the canonical navigable path for
// its content type. It is pure and total: for any result, including
// ones with missing or malformed AdditionalData, it returns a usable
// path starting with "/". Each content type tries its preferred
// fields in order and degrades along a documented fallback chain; an
// unrecognised content type lands on the generic search page.
func Resolve(result SearchResult) string {
	id := string(result.RecordID)

	switch result.ContentType {
	case ContentTypeCourse:
		if slug, ok := result.Field("slug"); ok {
			return "/courses/" + slug
		}
		return "/courses/" + id

	case ContentTypeLesson:
		return resolveLesson(result, id)

	case ContentTypePost:
		return "/community/posts/" + id

	case ContentTypeComment:
		if postID, ok := result.Field("post_id"); ok {
			return "/community/posts/" + postID + "#comment-" + id
		}
		return "/community/posts?comment=" + id

	case ContentTypeUser:
		if username, ok := result.Field("username"); ok {
			return "/profile/" + username
		}
		if email, ok := result.Field("email"); ok {
			return "/users/" + email
		}
		return "/users/" + id

	case ContentTypeClassroom:
		if slug, ok := result.Field("slug"); ok {
			return "/classroom/" + slug
		}
		if code, ok := result.Field("class_code"); ok {
			return "/classroom/" + code
		}
		return "/classroom/" + id

	case ContentTypeGroup:
		if slug, ok := result.Field("slug"); ok {
			return "/community/groups/" + slug
		}
		return "/community/groups/" + id

	case ContentTypeNote:
		if courseSlug, ok := result.Field("course_slug"); ok {
			return "/courses/" + courseSlug + "/notes/" + id
		}
		if courseID, ok := result.Field("course_id"); ok {
			return "/courses/" + courseID + "/notes/" + id
		}
		return "/notes/" + id

	case ContentTypeQuiz:
		return resolveQuiz(result, id)

	case ContentTypeTutor:
		if userID, ok := result.Field("user_id"); ok {
			return "/tutors/" + userID
		}
		return "/tutors/" + id

	case ContentTypeAnnouncement:
		return "/announcements/" + id

	default:
		return "/search?type=" + string(result.ContentType) + "&id=" + id
	}
}

// resolveLesson picks the lesson learn-page path. Lessons navigate
// inside their course, so the chain prefers course slug plus public
// lesson id, then lesson slug, then numeric course id, and finally a
// courseless learn link.
func resolveLesson(result SearchResult, id string) string {
	courseSlug, hasCourseSlug := result.Field("course_slug")
	if hasCourseSlug {
		if publicID, ok := result.Field("public_id"); ok {
			return "/courses/" + courseSlug + "/learn?lesson=" + publicID
		}
		if lessonSlug, ok := result.Field("lesson_slug"); ok {
			return "/courses/" + courseSlug + "/learn?lesson=" + lessonSlug
		}
	}
	if courseID, ok := result.Field("course_id"); ok {
		return "/courses/" + courseID + "/learn?lesson=" + id
	}
	return "/courses/learn?lesson=" + id
}

// resolveQuiz picks the quiz path. Classroom context wins over course
// context; with neither, the quiz gets a standalone page.
func resolveQuiz(result SearchResult, id string) string {
	if classroomSlug, ok := result.Field("classroom_slug"); ok {
		return "/classroom/" + classroomSlug + "/quiz/" + id
	}
	if classroomID, ok := result.Field("classroom_id"); ok {
		return "/classroom/" + classroomID + "/quiz/" + id
	}
	if courseSlug, ok := result.Field("course_slug"); ok {
		return "/courses/" + courseSlug + "/quiz/" + id
	}
	if courseID, ok := result.Field("course_id"); ok {
		return "/courses/" + courseID + "/quiz/" + id
	}
	return "/quiz/" + id
}
