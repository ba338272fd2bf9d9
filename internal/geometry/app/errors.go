package app

import (
	"errors"

	"TriGrid/modules/kit/errx"
)

type Code = errx.Code

const (
	// CodeShapeRejected 表示请求被几何规则拒绝（业务错误，不是系统故障）。
	CodeShapeRejected Code = "SHAPE_REJECTED"
	CodeInternal      Code = errx.CodeInternal
)

type Error = errx.Error

// 对外消息保持与既有 API 一致。
const (
	MsgUnsupportedShape      = "Only Triangle shape is currently supported."
	MsgCalculateCoordinates  = "Failed to calculate coordinates."
	MsgCalculateCellReference = "Failed to find the triangle with given coordinates."
)

var (
	ErrShapeRejected    = errx.NewBiz(CodeShapeRejected, "")
	ErrUnsupportedShape = ErrShapeRejected.WithMsg(MsgUnsupportedShape).WithReason(ReasonUnsupportedKind)
	ErrInternalServer   = errx.ErrInternal
)

func reject(msg string, reason Reason) *Error {
	return ErrShapeRejected.WithMsg(msg).WithReason(reason)
}

// IsRejected 判断错误链中是否有几何规则拒绝。
func IsRejected(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.IsBiz() && errors.Is(err, ErrShapeRejected)
}

func GetErrorReasonCode(err error) string {
	var rp interface{ Reason() string }
	if !errors.As(err, &rp) {
		return ""
	}
	return rp.Reason()
}

func GetErrorMessage(err error) string {
	var mp interface{ Msg() string }
	if !errors.As(err, &mp) {
		return ""
	}
	return mp.Msg()
}
