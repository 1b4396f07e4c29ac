package workflow

import (
	"errors"

	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
)

// Client-side failures cross the workflow boundary as non-retryable
// application errors whose type names the errs code.
var errorTypes = map[errs.ErrCode]string{
	errs.InvalidArgument:    "INVALID_ARGUMENT",
	errs.NotFound:           "NOT_FOUND",
	errs.AlreadyExists:      "ALREADY_EXISTS",
	errs.FailedPrecondition: "FAILED_PRECONDITION",
}

func activityError(msg string, err error) error {
	var e *errs.Error
	if errors.As(err, &e) {
		if errType, ok := errorTypes[e.Code]; ok {
			return temporal.NewNonRetryableApplicationError(e.Message, errType, nil)
		}
	}
	return temporal.NewApplicationError(msg, "INTERNAL", err)
}

// ToAPIError converts the error of a failed RecordSale run back into an
// *errs.Error.
func ToAPIError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		for code, errType := range errorTypes {
			if appErr.Type() == errType {
				return &errs.Error{Code: code, Message: appErr.Message()}
			}
		}
	}
	return &errs.Error{Code: errs.Internal, Message: "failed to record sale"}
}
