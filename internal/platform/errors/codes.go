package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Theme errors
	CodeThemeNameEmpty         Code = "THEME_NAME_EMPTY"
	CodeThemeContentMixInvalid Code = "THEME_CONTENT_MIX_INVALID"
	CodeThemeNotFound          Code = "THEME_NOT_FOUND"
	CodeThemeImportInvalid     Code = "THEME_IMPORT_INVALID"

	// Variant errors
	CodePostTypeNotFound Code = "POST_TYPE_NOT_FOUND"

	// Composition errors
	CodePostLengthExceeded Code = "POST_LENGTH_EXCEEDED"

	// Draft errors
	CodeDraftNameEmpty        Code = "DRAFT_NAME_EMPTY"
	CodeDraftNotFound         Code = "DRAFT_NOT_FOUND"
	CodeDraftFilterInvalid    Code = "DRAFT_FILTER_INVALID"
	CodeDraftNoActiveDraft    Code = "DRAFT_NO_ACTIVE_DRAFT"
	CodeDraftComponentUnknown Code = "DRAFT_COMPONENT_UNKNOWN"
	CodeDraftComponentInvalid Code = "DRAFT_COMPONENT_INVALID"

	// LinkedIn errors
	CodeLinkedInAuthMissing     Code = "LINKEDIN_AUTH_MISSING"
	CodeLinkedInPostRejected    Code = "LINKEDIN_POST_REJECTED"
	CodeLinkedInUploadFailed    Code = "LINKEDIN_UPLOAD_FAILED"
	CodeLinkedInMediaNotReady   Code = "LINKEDIN_MEDIA_NOT_READY"
	CodeLinkedInResponseInvalid Code = "LINKEDIN_RESPONSE_INVALID"

	// Storage errors
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
)

// HTTPStatus maps domain codes to HTTP status codes for the web surface.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeThemeNameEmpty,
		CodeThemeContentMixInvalid,
		CodeThemeImportInvalid,
		CodePostLengthExceeded,
		CodeDraftNameEmpty,
		CodeDraftFilterInvalid,
		CodeDraftComponentUnknown,
		CodeDraftComponentInvalid:
		return http.StatusBadRequest

	case CodeThemeNotFound,
		CodePostTypeNotFound,
		CodeDraftNotFound,
		CodeNotFound:
		return http.StatusNotFound

	case CodeAlreadyExists:
		return http.StatusConflict

	case CodeDraftNoActiveDraft,
		CodeLinkedInMediaNotReady:
		return http.StatusPreconditionFailed

	case CodeLinkedInAuthMissing:
		return http.StatusUnauthorized

	case CodeLinkedInPostRejected,
		CodeLinkedInUploadFailed,
		CodeLinkedInResponseInvalid:
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
