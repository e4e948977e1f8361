package domain

import (
	"fmt"
	"math"
	"strconv"
)

// ResultPreview carries the display strings a result card shows under
// the title, derived from a result's AdditionalData with per-type
// defaults when fields are missing.
type ResultPreview struct {
	// PrimaryInfo is the lead line (instructor, author, role, ...).
	PrimaryInfo string

	// SecondaryInfo is the supporting line.
	SecondaryInfo string

	// TertiaryInfo is an optional third line; empty when unknown.
	TertiaryInfo string

	// Metadata holds the remaining type-specific display values.
	Metadata map[string]any
}

// Preview derives the preview lines for a result. It never fails;
// missing fields degrade to per-type defaults or empty strings.
func Preview(result SearchResult) ResultPreview {
	switch result.ContentType {
	case ContentTypeCourse:
		return coursePreview(result)
	case ContentTypeLesson:
		return lessonPreview(result)
	case ContentTypePost:
		return postPreview(result)
	case ContentTypeUser:
		return userPreview(result)
	case ContentTypeClassroom:
		return classroomPreview(result)
	default:
		return genericPreview(result)
	}
}

func coursePreview(result SearchResult) ResultPreview {
	p := ResultPreview{
		PrimaryInfo:   fieldOr(result, "instructor_name", "Unknown Instructor"),
		SecondaryInfo: fieldOr(result, "level", "All Levels"),
		Metadata:      map[string]any{},
	}
	if lessons, ok := result.Field("total_lessons"); ok {
		p.TertiaryInfo = lessons + " lessons"
	}

	p.Metadata["price"] = "Free"
	if cents, ok := fieldFloat(result, "price_cents"); ok && cents > 0 {
		p.Metadata["price"] = fmt.Sprintf("$%.2f", cents/100)
	}
	if minutes, ok := fieldFloat(result, "total_duration_minutes"); ok {
		p.Metadata["duration"] = strconv.Itoa(int(math.Round(minutes/60))) + "h"
	}
	p.Metadata["students"] = fieldFloatOr(result, "total_students", 0)
	p.Metadata["rating"] = fieldFloatOr(result, "average_rating", 0)
	return p
}

func lessonPreview(result SearchResult) ResultPreview {
	p := ResultPreview{
		PrimaryInfo:   fieldOr(result, "course_title", "Unknown Course"),
		SecondaryInfo: fieldOr(result, "module_title", "Module"),
		Metadata:      map[string]any{},
	}
	if seconds, ok := fieldFloat(result, "duration"); ok {
		p.TertiaryInfo = strconv.Itoa(int(math.Round(seconds/60))) + " min"
	}

	p.Metadata["lesson_type"] = fieldOr(result, "kind", "video")
	if position, ok := result.Field("position"); ok {
		p.Metadata["position"] = position
	}
	return p
}

func postPreview(result SearchResult) ResultPreview {
	p := ResultPreview{
		PrimaryInfo:   fieldOr(result, "author_name", "Anonymous"),
		SecondaryInfo: fieldOr(result, "group_name", "General Discussion"),
		TertiaryInfo:  fieldOr(result, "comment_count", "0") + " comments",
		Metadata:      map[string]any{},
	}
	p.Metadata["likes"] = fieldFloatOr(result, "like_count", 0)
	p.Metadata["views"] = fieldFloatOr(result, "view_count", 0)
	return p
}

func userPreview(result SearchResult) ResultPreview {
	p := ResultPreview{
		PrimaryInfo: fieldOr(result, "role", "Student"),
		Metadata:    map[string]any{},
	}
	if name, ok := result.Field("display_name"); ok {
		p.SecondaryInfo = name
	} else if name, ok := result.Field("full_name"); ok {
		p.SecondaryInfo = name
	}
	if bio, ok := result.Field("bio"); ok {
		p.TertiaryInfo = headTruncate(bio, 50)
	}

	p.Metadata["total_points"] = fieldFloatOr(result, "total_points", 0)
	p.Metadata["courses_completed"] = fieldFloatOr(result, "courses_completed", 0)
	return p
}

func classroomPreview(result SearchResult) ResultPreview {
	p := ResultPreview{
		PrimaryInfo:   fieldOr(result, "owner_name", "Unknown Teacher"),
		SecondaryInfo: fieldOr(result, "member_count", "0") + " members",
		TertiaryInfo:  fieldOr(result, "visibility", "Private"),
		Metadata:      map[string]any{},
	}
	if code, ok := result.Field("class_code"); ok {
		p.Metadata["class_code"] = code
	}
	return p
}

func genericPreview(result SearchResult) ResultPreview {
	p := ResultPreview{Metadata: map[string]any{}}
	if author, ok := result.Field("author"); ok {
		p.PrimaryInfo = author
	} else if creator, ok := result.Field("creator"); ok {
		p.PrimaryInfo = creator
	}
	if category, ok := result.Field("category"); ok {
		p.SecondaryInfo = category
	} else if typ, ok := result.Field("type"); ok {
		p.SecondaryInfo = typ
	}
	for k, v := range result.AdditionalData {
		p.Metadata[k] = v
	}
	return p
}

// fieldOr returns the named field or a default when absent.
func fieldOr(result SearchResult, key, fallback string) string {
	if v, ok := result.Field(key); ok {
		return v
	}
	return fallback
}

// fieldFloat returns a numeric AdditionalData value.
func fieldFloat(result SearchResult, key string) (float64, bool) {
	s, ok := result.Field(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// fieldFloatOr returns a numeric AdditionalData value or a default.
func fieldFloatOr(result SearchResult, key string, fallback float64) float64 {
	if f, ok := fieldFloat(result, key); ok {
		return f
	}
	return fallback
}
