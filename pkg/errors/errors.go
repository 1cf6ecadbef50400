package errors

import stderrors "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 参数校验错误，在访问存储前返回。
var (
	InvalidID       = Definition{Code: "INVALID_ID", Message: "Invalid identifier"}
	InvalidDistance = Definition{Code: "INVALID_DISTANCE", Message: "Distance must be a finite non-negative number"}
	InvalidPace     = Definition{Code: "INVALID_PACE", Message: "Pace must be a positive number of seconds per km"}
	InvalidScope    = Definition{Code: "INVALID_SCOPE", Message: "Unknown emblem scope"}
	InvalidDuration = Definition{Code: "INVALID_DURATION", Message: "Duration must be positive"}
)

// 资源不存在，按实体区分，不重试。
var (
	UserNotFound       = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
	CourseNotFound     = Definition{Code: "COURSE_NOT_FOUND", Message: "Course not found"}
	EnrollmentNotFound = Definition{Code: "ENROLLMENT_NOT_FOUND", Message: "Enrollment not found"}
	SegmentNotFound    = Definition{Code: "SEGMENT_NOT_FOUND", Message: "Segment not found"}
	LandmarkNotFound   = Definition{Code: "LANDMARK_NOT_FOUND", Message: "Landmark not found"}
	EmblemNotFound     = Definition{Code: "EMBLEM_NOT_FOUND", Message: "Emblem not found"}
	SessionNotFound    = Definition{Code: "SESSION_NOT_FOUND", Message: "Running session not found"}
)

// 进度账本错误。
var (
	ProgressConflict        = Definition{Code: "PROGRESS_CONFLICT", Message: "Progress was modified concurrently, please retry"}
	StatusTransitionInvalid = Definition{Code: "STATUS_TRANSITION_INVALID", Message: "Status transition not allowed"}
	LandmarkNotReached      = Definition{Code: "LANDMARK_NOT_REACHED", Message: "Landmark not reached yet"}
)

// 跑步记录错误。
var (
	SessionAlreadyCompleted = Definition{Code: "SESSION_ALREADY_COMPLETED", Message: "Running session already completed"}
)

// 接入层错误。
var (
	Unauthorized    = Definition{Code: "UNAUTHORIZED", Message: "Missing or invalid user identity"}
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many progress reports, please slow down"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidID.Code:               InvalidID,
	InvalidDistance.Code:         InvalidDistance,
	InvalidPace.Code:             InvalidPace,
	InvalidScope.Code:            InvalidScope,
	InvalidDuration.Code:         InvalidDuration,
	UserNotFound.Code:            UserNotFound,
	CourseNotFound.Code:          CourseNotFound,
	EnrollmentNotFound.Code:      EnrollmentNotFound,
	SegmentNotFound.Code:         SegmentNotFound,
	LandmarkNotFound.Code:        LandmarkNotFound,
	EmblemNotFound.Code:          EmblemNotFound,
	SessionNotFound.Code:         SessionNotFound,
	ProgressConflict.Code:        ProgressConflict,
	StatusTransitionInvalid.Code: StatusTransitionInvalid,
	LandmarkNotReached.Code:      LandmarkNotReached,
	SessionAlreadyCompleted.Code: SessionAlreadyCompleted,
	Unauthorized.Code:            Unauthorized,
	TooManyRequests.Code:         TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// IsDefinition 判断 err 是否为业务错误（可直接返回给调用方）。
func IsDefinition(err error) (Definition, bool) {
	var def Definition
	if stderrors.As(err, &def) {
		return def, true
	}
	return Definition{}, false
}

// SkipMessageError 表示消息无需重试，消费者直接 ack。
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return "skip message: " + e.Reason
}
