package web

import (
	"github.com/campusbridge/campusbridge/internal/dispute/internal/errs"
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
	terminalLevelResult = ginx.Result{
		Code: errs.TerminalLevel.Code,
		Msg:  errs.TerminalLevel.Msg,
	}
	concurrentConflictResult = ginx.Result{
		Code: errs.ConcurrentConflict.Code,
		Msg:  errs.ConcurrentConflict.Msg,
	}
)
