package response

const (
	DefaultErrorMessage     = "Something went wrong"
	MessageSuccess          = "Success"
	ValidationErrorCode     = 400
	UpstreamErrorCode       = 502
	InternalServerErrorCode = 500
)
