package models

// MethodCall is one invocation arriving over the bridge
type MethodCall struct {
	ID        string                 `json:"id,omitempty"`
	Method    string                 `json:"method"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// MethodError is the failure half of a MethodResponse
type MethodError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// MethodResponse answers exactly one MethodCall.
// Exactly one of Result, Error or NotImplemented is meaningful.
type MethodResponse struct {
	ID             string       `json:"id,omitempty"`
	Result         interface{}  `json:"result"`
	Error          *MethodError `json:"error,omitempty"`
	NotImplemented bool         `json:"notImplemented,omitempty"`
}

// Succeeded reports whether the call produced a result
func (r MethodResponse) Succeeded() bool {
	return r.Error == nil && !r.NotImplemented
}
