package response

// 常见业务 系统级错误码（直接基于 HTTP 语义）
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeServerError  = 500
	CodeTimeout      = 504
)

// CodeMsgMap 用于集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeOK:           "",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeForbidden:    "Forbidden",
	CodeNotFound:     "Not Found",
	CodeConflict:     "Conflict",
	CodeServerError:  "Error Occurs",
	CodeTimeout:      "Timeout",
}

// HTTPStatus errorCode -> HTTP 状态码；成功统一 200
func HTTPStatus(code int) int {
	if code == CodeOK {
		return 200
	}
	if _, ok := CodeMsgMap[code]; ok {
		return code
	}
	return CodeServerError
}
