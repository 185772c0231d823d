package dto

// ListResponse wraps list results the way the POS frontend expects.
type ListResponse struct {
	List any `json:"list"`
}

// NewListResponse wraps items in the list envelope.
func NewListResponse(items any) ListResponse {
	return ListResponse{List: items}
}

// MessageResponse is a bare success message.
type MessageResponse struct {
	Message string `json:"message"`
}
