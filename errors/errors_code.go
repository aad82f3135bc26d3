package errors

type Code string

const (
	CodeInvalidQuery  Code = "INVALID_QUERY"
	CodeConfig        Code = "CONFIG_ERROR"
	CodeReferenceData Code = "REFERENCE_DATA_ERROR"
	CodeStorage       Code = "STORAGE_ERROR"
	CodeInternal      Code = "INTERNAL_ERROR"
)
