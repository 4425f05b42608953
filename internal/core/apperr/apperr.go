package apperr

import (
	"errors"

	resp "catalog-admin/internal/transport/http/response"
)

// Kind 业务错误分类（对外只暴露这几类）
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

// MsgInternal 内部错误统一文案，不泄露根因
const MsgInternal = "Error Occurs"

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Code 映射为 HTTP 语义的 errorCode
func (k Kind) Code() int {
	switch k {
	case KindValidation:
		return resp.CodeBadRequest
	case KindUnauthorized:
		return resp.CodeUnauthorized
	case KindNotFound:
		return resp.CodeNotFound
	case KindConflict:
		return resp.CodeConflict
	default:
		return resp.CodeServerError
	}
}

// Error 服务层统一错误对象
type Error struct {
	Kind Kind
	Msg  string
	Err  error // 根因，仅用于日志
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error   { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Msg: msg} }
func Internal(err error) error      { return &Error{Kind: KindInternal, Msg: MsgInternal, Err: err} }

// From 已是 *Error 的原样返回，其余一律包成 Internal
func From(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// KindOf 非 *Error 一律按 Internal 处理
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Is 判断 err 是否属于某一类
func Is(err error, k Kind) bool { return err != nil && KindOf(err) == k }

// Message 对外文案；Internal 永远是统一文案
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindInternal {
		return ae.Error()
	}
	return MsgInternal
}
