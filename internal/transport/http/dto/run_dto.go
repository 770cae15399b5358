package dto

type RunBatchRequest struct {
	Tasks []string `json:"tasks"`
}

type RunBatchResponse struct {
	Results map[string]any `json:"results"`
	User    string         `json:"user"`
}

type SuccessResponse struct {
	OK bool `json:"ok"`
}

// Stable error codes the gateway reports.
const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeUnknownTasks     = "UNKNOWN_TASKS"
	CodeForbiddenTasks   = "FORBIDDEN_TASKS"
	CodeMalformedRequest = "MALFORMED_REQUEST"
	CodeDispatchFailed   = "DISPATCH_FAILED"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	TaskIDs []string `json:"task_ids,omitempty"`
}
