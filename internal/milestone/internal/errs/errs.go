package errs

var (
	SystemError            = ErrorCode{Code: 513001, Msg: "系统错误"}
	InvalidInput           = ErrorCode{Code: 513002, Msg: "非法输入"}
	InvalidTransition      = ErrorCode{Code: 513003, Msg: "非法的状态流转"}
	Unauthorized           = ErrorCode{Code: 513004, Msg: "无权限操作"}
	PreconditionFailed     = ErrorCode{Code: 513005, Msg: "前置条件不满足"}
	ConcurrentConflict     = ErrorCode{Code: 513006, Msg: "记录已被并发修改, 请重试"}
	ExternalCustodyFailure = ErrorCode{Code: 513007, Msg: "资金托管方暂时不可用, 请重试"}
	DuplicateRequest       = ErrorCode{Code: 513008, Msg: "重复请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
