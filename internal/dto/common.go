package dto

// ListParams defines the offset pagination query parameters shared by list endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=0"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
