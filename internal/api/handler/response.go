package handler

// apiResponse is the canonical envelope for every endpoint. Non-2xx
// responses carry Message and Success=false; list responses carry Count.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func envelope(data any, message string) apiResponse {
	return apiResponse{Success: true, Data: data, Message: message}
}

func listEnvelope(data any, count int) apiResponse {
	return apiResponse{Success: true, Data: data, Count: &count}
}
