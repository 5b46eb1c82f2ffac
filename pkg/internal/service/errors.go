package service

import (
	"errors"
	"fmt"

	"github.com/chrisgzf/cadet/pkg/rule"
)

// Kind 区分目录操作可能失败的几种方式，处理层据此映射 HTTP 状态码.
type Kind int

const (
	// KindForbidden 角色不在特权集合内，拒绝写入. 正常运行下的预期结果，不重试.
	KindForbidden Kind = iota + 1
	// KindNotFound 引用的 id 在行存储中不存在.
	KindNotFound
	// KindValidation 请求属性未通过字段校验，携带按字段的明细.
	KindValidation
	// KindCycle 目录父链成环，祖先回溯被终止.
	KindCycle
	// KindStore 行存储或内容存储报告了未预期的失败，不透明包装.
	KindStore
)

// Error 是目录服务的标记错误，所有操作以显式返回值传播，无全局处理.
type Error struct {
	Kind   Kind
	Msg    string
	Fields rule.ValidationErrors // 仅 KindValidation 填充
	Err    error                 // 仅 KindStore 填充底层原因
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}

	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// forbiddenErr 角色无权执行目录写入.
func forbiddenErr(role, op string) *Error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf("role %s is not allowed to %s", role, op)}
}

// notFoundErr 指定实体不存在.
func notFoundErr(entity string, id uint) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s %d not found", entity, id)}
}

// validationErr 字段校验失败，保留按字段明细.
func validationErr(err error) *Error {
	return &Error{Kind: KindValidation, Msg: "invalid attributes", Fields: rule.Errors(err)}
}

// fieldErr 针对单个字段的校验失败（如缺失的 multipart 文件域）.
func fieldErr(field, msg string) *Error {
	return &Error{Kind: KindValidation, Msg: "invalid attributes", Fields: rule.ValidationErrors{field: msg}}
}

// cycleErr 目录父链成环.
func cycleErr(id uint) *Error {
	return &Error{Kind: KindCycle, Msg: fmt.Sprintf("category parent chain starting at %d contains a cycle", id)}
}

// storeErr 存储层失败的不透明包装.
func storeErr(op string, err error) *Error {
	return &Error{Kind: KindStore, Msg: op + " failed", Err: err}
}

// KindOf 返回目录错误的 Kind，非目录错误返回 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// FieldsOf 返回校验错误的按字段明细，其他错误返回 nil.
func FieldsOf(err error) rule.ValidationErrors {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}

	return nil
}
