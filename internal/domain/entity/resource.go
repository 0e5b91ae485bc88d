// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Kind tags the three resource variants surfaced by the portal.
type Kind string

const (
	// KindSyllabus is a course syllabus stored in the "syllabi" collection.
	KindSyllabus Kind = "syllabus"
	// KindNote is a set of lecture notes stored in the "notes" collection.
	KindNote Kind = "note"
	// KindPastQuestion is a previous-year question paper stored in the "pyqs" collection.
	KindPastQuestion Kind = "pyq"
)

// Kinds lists every valid Kind in display order.
var Kinds = []Kind{KindSyllabus, KindNote, KindPastQuestion}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the known variants.
func (k Kind) IsValid() bool {
	switch k {
	case KindSyllabus, KindNote, KindPastQuestion:
		return true
	default:
		return false
	}
}

// Collection returns the remote collection name the variant is read from.
func (k Kind) Collection() string {
	switch k {
	case KindSyllabus:
		return "syllabi"
	case KindNote:
		return "notes"
	case KindPastQuestion:
		return "pyqs"
	default:
		return ""
	}
}

// ParseKind accepts either the singular kind or its collection name.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "syllabus", "syllabi":
		return KindSyllabus, true
	case "note", "notes":
		return KindNote, true
	case "pyq", "pyqs":
		return KindPastQuestion, true
	default:
		return "", false
	}
}

// Resource is implemented only by *Syllabus, *Note and *PastQuestion. The
// variants are always handled by pointer so a type switch has one case per kind.
type Resource interface {
	ResourceID() string
	ResourceKind() Kind
	Common() ResourceBase
	isResource()
}

// ResourceBase holds the fields every variant carries.
type ResourceBase struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	DepartmentID string    `json:"department_id"`
	CourseCode   string    `json:"course_code"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Syllabus is a course syllabus. Credits is absent when the store has no value.
type Syllabus struct {
	ResourceBase
	Credits *int `json:"credits,omitempty"`
}

// Note is a set of lecture notes. UploaderName also names the archive in Drive.
type Note struct {
	ResourceBase
	UploaderName string `json:"uploader_name"`
}

// PastQuestion is a previous-year question paper.
type PastQuestion struct {
	ResourceBase
	ExamSession *string `json:"exam_session,omitempty"`
}

func (s Syllabus) ResourceID() string { return s.ID }
func (s Syllabus) ResourceKind() Kind { return KindSyllabus }
func (s Syllabus) Common() ResourceBase { return s.ResourceBase }
func (*Syllabus) isResource() {}
func (n Note) ResourceID() string { return n.ID }
func (n Note) ResourceKind() Kind { return KindNote }
func (n Note) Common() ResourceBase { return n.ResourceBase }
func (*Note) isResource() {}
func (p PastQuestion) ResourceID() string { return p.ID }
func (p PastQuestion) ResourceKind() Kind { return KindPastQuestion }
func (p PastQuestion) Common() ResourceBase { return p.ResourceBase }
func (*PastQuestion) isResource() {}

// MarshalJSON adds the "kind" tag so decoders can pick the variant.
func (s Syllabus) MarshalJSON() ([]byte, error) {
	type alias Syllabus

	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindSyllabus, alias(s)})
}

// MarshalJSON adds the "kind" tag so decoders can pick the variant.
func (n Note) MarshalJSON() ([]byte, error) {
	type alias Note

	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindNote, alias(n)})
}

// MarshalJSON adds the "kind" tag so decoders can pick the variant.
func (p PastQuestion) MarshalJSON() ([]byte, error) {
	type alias PastQuestion

	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{KindPastQuestion, alias(p)})
}

// DecodeResource decodes a tagged JSON object into its concrete variant.
func DecodeResource(data []byte) (Resource, error) {
	var tag struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, errors.Wrap(err, "decode resource kind")
	}

	switch tag.Kind {
	case KindSyllabus:
		var s Syllabus
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decode syllabus")
		}

		return &s, nil
	case KindNote:
		var n Note
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, errors.Wrap(err, "decode note")
		}

		return &n, nil
	case KindPastQuestion:
		var p PastQuestion
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(err, "decode past question")
		}

		return &p, nil
	default:
		return nil, errors.Errorf("unknown resource kind %q", tag.Kind)
	}
}
