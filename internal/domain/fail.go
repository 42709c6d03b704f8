package domain

import "errors"

// FailKind 区分客户端输入错误与基础设施故障
type FailKind int

const (
	FailInvalid FailKind = iota + 1
	FailUnauthorized
	FailForbidden
	FailNotFound
	FailInternal
)

type Fail struct {
	Kind FailKind
	Msg  string
	Err  error
}

func (f *Fail) Error() string {
	if f.Err != nil && f.Msg != "" {
		return f.Msg + ": " + f.Err.Error()
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return f.Msg
}

func (f *Fail) Unwrap() error { return f.Err }

func Invalid(msg string, err error) error  { return &Fail{Kind: FailInvalid, Msg: msg, Err: err} }
func Unauthorized(msg string) error        { return &Fail{Kind: FailUnauthorized, Msg: msg} }
func Forbidden(msg string) error           { return &Fail{Kind: FailForbidden, Msg: msg} }
func NotFound(msg string) error            { return &Fail{Kind: FailNotFound, Msg: msg} }
func Internal(msg string, err error) error { return &Fail{Kind: FailInternal, Msg: msg, Err: err} }

// KindOf 取错误的 FailKind；非 Fail 一律按 Internal 处理
func KindOf(err error) FailKind {
	var f *Fail
	if errors.As(err, &f) {
		return f.Kind
	}
	return FailInternal
}
