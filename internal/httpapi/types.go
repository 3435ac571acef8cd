package httpapi

type generateQuizRequest struct {
	URL string `json:"url"`
}

// errorResponse matches the error payload the front-end client parses.
type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status string `json:"status"`
}
