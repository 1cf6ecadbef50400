package model

// APIVersion 响应中声明的接口版本
const APIVersion = "v1"

// Meta 响应元数据，RequestID 取当前请求的 trace id，便于按请求查日志
type Meta struct {
	RequestID  string `json:"request_id,omitempty"`
	APIVersion string `json:"api_version"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

type ErrorDetail map[string]interface{}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details ErrorDetail `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
	Meta  Meta      `json:"meta"`
}

func NewSuccessResponse(data interface{}, requestID string) SuccessResponse {
	return SuccessResponse{
		Data: data,
		Meta: Meta{RequestID: requestID, APIVersion: APIVersion},
	}
}

func NewErrorResponse(code, message string, details ErrorDetail, requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: Meta{RequestID: requestID, APIVersion: APIVersion},
	}
}
