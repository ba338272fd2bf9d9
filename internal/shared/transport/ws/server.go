package ws

import (
	"TriGrid/modules/kit/logx"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Options struct {
	// AllowedOrigins 为空或包含 "*" 时允许所有跨域来源。
	AllowedOrigins []string
	// ReadLimit 是单帧最大字节数，<= 0 表示不限制。
	ReadLimit int64
}

type Server struct {
	router   *Router
	log      logx.Logger
	upgrader websocket.Upgrader
	opts     Options

	mu     sync.Mutex
	conns  map[*WsServer]struct{}
	closed bool
}

func NewServer(r *Router, l logx.Logger, opts Options) *Server {
	if l == nil {
		l = logx.Nop()
	}
	allowAll := len(opts.AllowedOrigins) == 0 || slices.Contains(opts.AllowedOrigins, "*")
	return &Server{
		router: r,
		log:    l,
		opts:   opts,
		conns:  make(map[*WsServer]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(req *http.Request) bool {
				origin := req.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(opts.AllowedOrigins, origin)
			},
		},
	}
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	wsConn, err := s.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Error("websocket upgrade error", zap.Error(err))
		return
	}

	wsServer := NewWsServer(wsConn, s.log, s.opts.ReadLimit)
	wsServer.Router(s.router)
	if !s.track(wsServer) {
		wsServer.Close()
		return
	}

	s.log.Info("websocket upgrade success", zap.String("remote", wsConn.RemoteAddr().String()))
	wsServer.Run()
	go func() {
		<-wsServer.done
		s.untrack(wsServer)
	}()
}

// Shutdown 关闭所有存活连接，之后的升级请求会被直接断开。
// 已劫持的连接不受 http.Server.Shutdown 管理，需要单独关闭。
func (s *Server) Shutdown() {
	s.mu.Lock()
	s.closed = true
	conns := make([]*WsServer, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
}

// ConnCount 返回当前存活连接数。
func (s *Server) ConnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) track(c *WsServer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[c] = struct{}{}
	return true
}

func (s *Server) untrack(c *WsServer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, c)
}
