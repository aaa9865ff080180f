package web

import (
	"github.com/campusbridge/campusbridge/internal/milestone/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
	concurrentConflictResult = ginx.Result{
		Code: errs.ConcurrentConflict.Code,
		Msg:  errs.ConcurrentConflict.Msg,
	}
	externalCustodyFailureResult = ginx.Result{
		Code: errs.ExternalCustodyFailure.Code,
		Msg:  errs.ExternalCustodyFailure.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
)

func preconditionFailedResult(reason string) ginx.Result {
	return ginx.Result{
		Code: errs.PreconditionFailed.Code,
		Msg:  errs.PreconditionFailed.Msg + ": " + reason,
	}
}
