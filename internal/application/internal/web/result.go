package web

import (
	"github.com/campusbridge/campusbridge/internal/application/internal/errs"
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
	offerExpiredResult = ginx.Result{
		Code: errs.OfferExpired.Code,
		Msg:  errs.OfferExpired.Msg,
	}
	concurrentConflictResult = ginx.Result{
		Code: errs.ConcurrentConflict.Code,
		Msg:  errs.ConcurrentConflict.Msg,
	}
)
