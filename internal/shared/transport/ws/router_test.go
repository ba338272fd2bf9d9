package ws

import (
	"context"
	"testing"

	"TriGrid/internal/shared/transport"
)

func newResp() *WsMsgResp {
	return &WsMsgResp{Body: &RespBody{}}
}

func TestRouter_Dispatch_命中处理器(t *testing.T) {
	r := NewRouter(nil)
	called := false
	r.Group("shape").Handle("coordinates", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		called = true
		if transport.FromContext(ctx) == nil {
			t.Fatalf("期望 handler 拿到带 AccessLog 的 ctx")
		}
		resp.Body.Code = transport.OK
		resp.Body.Msg = "ok"
	})

	resp := newResp()
	r.Dispatch(&WsMsgReq{Body: &ReqBody{Name: "shape.coordinates"}}, resp)
	if !called {
		t.Fatalf("期望调用 shape.coordinates 处理器")
	}
	if resp.Body.Code != transport.OK || resp.Body.Msg != "ok" {
		t.Fatalf("响应不符合预期: %+v", resp.Body)
	}
}

func TestRouter_Dispatch_路由错误(t *testing.T) {
	r := NewRouter(nil)
	r.Group("shape").Handle("coordinates", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {})

	for _, name := range []string{"", "shape", "shape.", ".coordinates", "shape.a.b", "grid.coordinates", "shape.missing"} {
		resp := newResp()
		r.Dispatch(&WsMsgReq{Body: &ReqBody{Name: name}}, resp)
		if resp.Body.Code != transport.InvalidParam {
			t.Fatalf("name=%q 期望 InvalidParam, got=%d", name, resp.Body.Code)
		}
	}
}

func TestRouter_Dispatch_handler漏设code视为系统错误(t *testing.T) {
	r := NewRouter(nil)
	r.Group("shape").Handle("noop", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {})

	resp := newResp()
	resp.Body.Code = transport.OK
	r.Dispatch(&WsMsgReq{Body: &ReqBody{Name: "shape.noop"}}, resp)
	if resp.Body.Code != transport.SystemError {
		t.Fatalf("期望默认 SystemError, got=%d", resp.Body.Code)
	}
}

func TestRouter_Dispatch_handler_panic按系统错误应答(t *testing.T) {
	r := NewRouter(nil)
	r.Group("shape").Handle("boom", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		panic("boom")
	})

	resp := newResp()
	r.Dispatch(&WsMsgReq{Body: &ReqBody{Name: "shape.boom"}}, resp)
	if resp.Body.Code != transport.SystemError || resp.Body.Msg == nil {
		t.Fatalf("期望 panic 被恢复并返回 SystemError, got=%+v", resp.Body)
	}
}

func TestBindJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	req := &WsMsgReq{Body: &ReqBody{Msg: map[string]any{"name": "grid", "size": 10}}}
	if err := BindJSON(req, &dst); err != nil {
		t.Fatalf("BindJSON err=%v", err)
	}
	if dst.Name != "grid" || dst.Size != 10 {
		t.Fatalf("解析结果不符合预期: %+v", dst)
	}
	if err := BindJSON(&WsMsgReq{Body: &ReqBody{}}, &dst); err == nil {
		t.Fatalf("期望空 msg 返回错误")
	}
	if err := BindJSON(nil, &dst); err == nil {
		t.Fatalf("期望 nil 请求返回错误")
	}
}
