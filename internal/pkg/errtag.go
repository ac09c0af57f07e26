package pkg

import "errors"

// Tag is a short machine-readable failure identifier. The UI layer owns the
// mapping from tag to human-readable text; the set of tags below is part of
// the service contract and crosses the handler boundary verbatim.
type Tag string

func (t Tag) Error() string { return string(t) }

const (
	TagInvalidTitle          Tag = "ERROR_INVALID_TITLE"
	TagInvalidDescription    Tag = "ERROR_INVALID_DESCRIPTION"
	TagInvalidContent        Tag = "ERROR_INVALID_CONTENT"
	TagInvalidCategory       Tag = "ERROR_INVALID_CATEGORY"
	TagInvalidDuration       Tag = "ERROR_INVALID_DURATION"
	TagInvalidDate           Tag = "ERROR_INVALID_DATE"
	TagInvalidTime           Tag = "ERROR_INVALID_TIME"
	TagMissingDate           Tag = "ERROR_MISSING_DATE"
	TagMissingTime           Tag = "ERROR_MISSING_TIME"
	TagNoTitle               Tag = "ERROR_NO_TITLE"
	TagNoContent             Tag = "ERROR_NO_CONTENT"
	TagTitleTooLong          Tag = "ERROR_TITLE_TOO_LONG"
	TagDescriptionTooLong    Tag = "ERROR_DESCRIPTION_TOO_LONG"
	TagContentTooLong        Tag = "ERROR_CONTENT_TOO_LONG"
	TagMeetingInPast         Tag = "ERROR_CANNOT_CREATE_MEETING_IN_THE_PAST"
	TagUnauthorized          Tag = "ERROR_UNAUTHORIZED"
	TagUnauthorizedUser      Tag = "ERROR_UNAUTHORIZED_USER"
	TagUnauthorizedCommunity Tag = "ERROR_UNAUTHORIZED_COMMUNITY"
	TagForbidden             Tag = "ERROR_FORBIDDEN"
	TagFetchingProfile       Tag = "ERROR_FETCHING_PROFILE"
	// Two historical "no community" tags. Notice paths emit TagNoCommunity,
	// Worry/Meeting paths emit TagUserHasNoCommunity; kept distinct on purpose.
	TagNoCommunity        Tag = "ERROR_NO_COMMUNITY"
	TagUserHasNoCommunity Tag = "ERROR_USER_HAS_NO_COMMUNITY"
	// Same split for insert failures: notice/meeting creation vs worry creation.
	TagDBInsertFailed Tag = "ERROR_DB_INSERT_FAILED"
	TagInsertFailed   Tag = "ERROR_INSERT_FAILED"
	TagUnknown        Tag = "ERROR_UNKNOWN"
)

// Normalize maps any error to a Tag. Untagged errors collapse to TagUnknown so
// callers never see a raw error object on tagged paths.
func Normalize(err error) Tag {
	var t Tag
	if errors.As(err, &t) {
		return t
	}
	return TagUnknown
}

// IsTag reports whether err carries a Tag.
func IsTag(err error) bool {
	var t Tag
	return errors.As(err, &t)
}
