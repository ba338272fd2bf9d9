package handler

import (
	"TriGrid/internal/geometry/app"
	"TriGrid/internal/shared/transport"
	"TriGrid/modules/kit/logx"
	"context"

	"go.uber.org/zap"
)

const MsgSystemBusy = "系统繁忙，请稍后重试"

func mapBizReasonToClientCode(reason string) int {
	switch reason {
	case app.ReasonUnsupportedKind.Code:
		return transport.UnsupportedShape
	case app.ReasonInvalidGrid.Code,
		app.ReasonInvalidCellReference.Code,
		app.ReasonMalformedShape.Code,
		app.ReasonInvalidTriangle.Code:
		return transport.CalculateFailed
	default:
		return transport.SystemError
	}
}

// HandleError 把应用层错误转换为客户端 code/msg，并且每个请求只打印一次错误日志。
func HandleError(ctx context.Context, log logx.Logger, err error) (int, string) {
	reason := app.GetErrorReasonCode(err)
	transport.SetErrorReason(ctx, reason)

	action := transport.FromContext(ctx).Action()
	if app.IsRejected(err) {
		msg := app.GetErrorMessage(err)
		logx.ReportBizWithLoggerContext(ctx, log, logx.NewBizLog(action, reason, msg),
			zap.String("reason_detail", app.ReasonMessage(reason)))
		return mapBizReasonToClientCode(reason), msg
	}

	logx.ReportSysErrorWithLoggerContext(ctx, log, logx.NewSysLog(action, err))
	return transport.SystemError, MsgSystemBusy
}
