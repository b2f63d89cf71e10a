package httperr

const (
	CodeValidation           = "validation_failed"
	CodeInvalidRequest       = "invalid_request"
	CodeNotFound             = "not_found"
	CodeRowBusy              = "row_busy"
	CodeConfirmationRequired = "confirmation_required"
	CodeNothingToExport      = "nothing_to_export"
	CodeStore                = "store_error"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeEmailTaken           = "email_taken"
	CodeUnauthorized         = "unauthorized"
)
