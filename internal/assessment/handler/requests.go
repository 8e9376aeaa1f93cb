package handler

// startSessionRequest opens an audit session against one framework.
type startSessionRequest struct {
	FrameworkID string `json:"framework_id"`
}

// recordResponseRequest carries the auditor's answer for one question.
// The question ID comes from the URL, not the body.
type recordResponseRequest struct {
	Status   string `json:"status"`
	Comment  string `json:"comment,omitempty"`
	Evidence string `json:"evidence,omitempty"`
}
