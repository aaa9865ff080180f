package errs

var (
	SystemError        = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 512002, Msg: "非法输入"}
	InvalidTransition  = ErrorCode{Code: 512003, Msg: "非法的状态流转"}
	Unauthorized       = ErrorCode{Code: 512004, Msg: "无权限操作"}
	OfferExpired       = ErrorCode{Code: 512005, Msg: "offer已过期"}
	ConcurrentConflict = ErrorCode{Code: 512006, Msg: "记录已被并发修改, 请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
