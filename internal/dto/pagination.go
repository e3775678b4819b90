package dto

// PaginationParams defines the common limit/offset query parameters.
type PaginationParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CursorPaginationParams defines query parameters for keyset pagination.
type CursorPaginationParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"next_token"`
}
