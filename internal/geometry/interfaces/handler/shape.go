package handler

import (
	"TriGrid/internal/geometry/app"
	"TriGrid/modules/kit/logx"
)

// Shape 聚合三种入口共享的依赖。
type Shape struct {
	ShapeService *app.ShapeService
	Log          logx.Logger
}

func NewShape(svc *app.ShapeService, log logx.Logger) *Shape {
	if log == nil {
		log = logx.Nop()
	}
	return &Shape{ShapeService: svc, Log: log}
}
