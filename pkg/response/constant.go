package response

const (
	MessageSuccess          = "Success"
	MessageNotFound         = "Not Found"
	DefaultErrorMessage     = "Something went wrong"
	NotFoundErrorCode       = 404
	InternalServerErrorCode = 500
)
