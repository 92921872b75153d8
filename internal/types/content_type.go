// Package types provides type definitions for structured data used throughout the application-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentType identifies the kind of application content being generated.
type ContentType string

// Supported content types.
const (
	ContentResume          ContentType = "resume"
	ContentCoverLetter     ContentType = "cover_letter"
	ContentLinkedInMessage ContentType = "linkedin_message"
	ContentEmailTemplate   ContentType = "email_template"
)

// DefaultContentType is used when an unknown content type is requested.
const DefaultContentType = ContentResume

// AllContentTypes lists every supported content type.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentResume,
		ContentCoverLetter,
		ContentLinkedInMessage,
		ContentEmailTemplate,
	}
}

// Valid reports whether ct is one of the supported content types.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentResume, ContentCoverLetter, ContentLinkedInMessage, ContentEmailTemplate:
		return true
	}
	return false
}

// LengthUnit returns the unit used when describing length limits for this content type.
func (ct ContentType) LengthUnit() string {
	switch ct {
	case ContentResume:
		return "words per section"
	case ContentCoverLetter:
		return "words total"
	case ContentLinkedInMessage:
		return "characters"
	case ContentEmailTemplate:
		return "words"
	default:
		return "words"
	}
}
