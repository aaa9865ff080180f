package errs

var (
	SystemError        = ErrorCode{Code: 514001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 514002, Msg: "非法输入"}
	InvalidTransition  = ErrorCode{Code: 514003, Msg: "非法的状态流转"}
	Unauthorized       = ErrorCode{Code: 514004, Msg: "无权限操作"}
	TerminalLevel      = ErrorCode{Code: 514005, Msg: "争议已在最高层级"}
	ConcurrentConflict = ErrorCode{Code: 514006, Msg: "记录已被并发修改, 请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
