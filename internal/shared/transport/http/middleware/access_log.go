package middleware

import (
	"TriGrid/internal/shared/transport"
	"TriGrid/modules/kit/logx"
	"TriGrid/modules/kit/tracex"
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(data []byte) (int, error) {
	_, _ = w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	_, _ = w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// AccessLog 统一写访问日志，并尽量从响应体中的 `code` 字段提取业务码。
// 请求头带 X-Trace-Id 时沿用，否则生成新的；trace_id 通过同名响应头回传。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		parent := tracex.Extract(c.Request.Context(), c.GetHeader)
		ctx := transport.NewContextWithParent(parent, action, "http")
		c.Request = c.Request.WithContext(ctx)
		if traceID, ok := tracex.TraceIDFrom(ctx); ok {
			c.Header(tracex.HeaderTraceID, traceID)
		}

		bw := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		switch bizCode, ok := parseBizCode(bw.body.Bytes()); {
		case ok:
			transport.SetBizCode(ctx, transport.BizCode(bizCode))
		case c.Writer.Status() >= http.StatusInternalServerError:
			transport.SetBizCode(ctx, transport.BizCode(transport.SystemError))
		case c.Writer.Status() >= http.StatusBadRequest:
			transport.SetBizCode(ctx, transport.BizCode(transport.InvalidParam))
		default:
			transport.SetBizCode(ctx, transport.BizCode(transport.OK))
		}

		transport.WriteAccessLog(ctx, log)
	}
}

func parseBizCode(body []byte) (int, bool) {
	if len(body) == 0 {
		return 0, false
	}

	// 统一响应体格式：{"code":123, ...}；非 JSON（例如 healthz 以外的纯文本）直接跳过
	var payload struct {
		Code *int `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, false
	}
	if payload.Code == nil {
		return 0, false
	}
	return *payload.Code, true
}
