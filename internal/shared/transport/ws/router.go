package ws

import (
	"TriGrid/internal/shared/transport"
	"TriGrid/modules/kit/logx"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp)

// Group 只是路由前缀的语法糖，处理器统一登记在 Router 上，键为 "prefix.name"。
type Group struct {
	router *Router
	prefix string
}

func (g *Group) Handle(name string, h HandlerFunc) {
	g.router.handlers[g.prefix+"."+name] = h
}

type Router struct {
	handlers map[string]HandlerFunc
	log      logx.Logger
}

func NewRouter(l logx.Logger) *Router {
	if l == nil {
		l = logx.Nop()
	}
	return &Router{
		handlers: make(map[string]HandlerFunc),
		log:      l,
	}
}

func (r *Router) Group(prefix string) *Group {
	return &Group{router: r, prefix: prefix}
}

// Registrar 由业务模块实现，把自己的 ws 路由挂到 Router 上。
type Registrar interface {
	WsRegister(r *Router)
}

func (r *Router) Register(modules ...Registrar) {
	for _, m := range modules {
		m.WsRegister(r)
	}
}

// Dispatch 按 req.Body.Name（例如 shape.coordinates）找到处理器并执行，每次调用写一条访问日志。
// 处理器 panic 时按系统错误应答，不影响连接上的后续消息。
func (r *Router) Dispatch(req *WsMsgReq, resp *WsMsgResp) {
	name, action := "", "WS unknown"
	if req != nil && req.Body != nil && req.Body.Name != "" {
		name, action = req.Body.Name, "WS "+req.Body.Name
	}
	ctx := transport.NewContext(action, "ws")
	defer r.writeAccessLog(ctx, resp)

	if resp == nil || resp.Body == nil {
		return
	}
	// 先置系统错误，避免 handler 漏设时出现“成功假象”。
	resp.Body.Code = transport.SystemError
	resp.Body.Msg = nil

	if req == nil || req.Body == nil {
		fail(resp, transport.InvalidParam, "参数有误")
		return
	}
	if !validRouteName(name) {
		fail(resp, transport.InvalidParam, "路由参数有误")
		return
	}
	h := r.handlers[name]
	if h == nil {
		fail(resp, transport.InvalidParam, "路由处理器不存在")
		return
	}

	defer func() {
		if p := recover(); p != nil {
			logx.ReportSysErrorWithLoggerContext(ctx, r.log,
				logx.NewSysLog(action, fmt.Errorf("handler panic: %v", p)),
				zap.Stack("panic_stack"))
			fail(resp, transport.SystemError, "系统繁忙，请稍后重试")
		}
	}()
	h(ctx, req, resp)
}

// validRouteName 要求恰好一个 "."，且两侧非空。
func validRouteName(name string) bool {
	prefix, handler, ok := strings.Cut(name, ".")
	return ok && prefix != "" && handler != "" && !strings.Contains(handler, ".")
}

func fail(resp *WsMsgResp, code int, msg string) {
	resp.Body.Code = code
	resp.Body.Msg = msg
}

func (r *Router) writeAccessLog(ctx context.Context, resp *WsMsgResp) {
	bizCode := transport.SystemError
	if resp != nil && resp.Body != nil {
		bizCode = resp.Body.Code
	}
	transport.SetBizCode(ctx, transport.BizCode(bizCode))
	transport.WriteAccessLog(ctx, r.log)
}
