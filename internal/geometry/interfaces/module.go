package interfaces

import (
	"TriGrid/internal/geometry/app"
	"TriGrid/internal/geometry/interfaces/handler"
	grpchandler "TriGrid/internal/geometry/interfaces/handler/grpc"
	httphandler "TriGrid/internal/geometry/interfaces/handler/http"
	wshandler "TriGrid/internal/geometry/interfaces/handler/ws"
	transportgrpc "TriGrid/internal/shared/transport/grpc"
	transporthttp "TriGrid/internal/shared/transport/http"
	"TriGrid/internal/shared/transport/ws"
	"TriGrid/modules/kit/logx"

	"github.com/gin-gonic/gin"
	gogrpc "google.golang.org/grpc"
)

type Module struct {
	wsHandler   *wshandler.WsHandler
	httpHandler *httphandler.HttpHandler
	grpcHandler *grpchandler.GrpcHandler
}

func New(svc *app.ShapeService, log logx.Logger) *Module {
	shape := handler.NewShape(svc, log)
	return &Module{
		wsHandler:   wshandler.NewWsHandler(shape),
		httpHandler: httphandler.NewHttpHandler(shape),
		grpcHandler: grpchandler.NewGrpcHandler(shape),
	}
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

func (m *Module) GrpcRegister(s gogrpc.ServiceRegistrar) {
	m.grpcHandler.RegisterRoutes(s)
}

var _ ws.Registrar = (*Module)(nil)
var _ transporthttp.Registrar = (*Module)(nil)
var _ transportgrpc.Registrar = (*Module)(nil)
