package ws

import (
	"TriGrid/modules/kit/logx"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const outChanSize = 256

// WsServer 表示一条 ws 连接：读协程负责解码与分发，写协程独占底层连接的写操作。
type WsServer struct {
	conn      *websocket.Conn
	router    *Router
	outChan   chan *WsMsgResp
	done      chan struct{}
	closeOnce sync.Once
	log       logx.Logger
}

// NewWsServer 包装一条已升级的连接；readLimit > 0 时限制单帧字节数，超限后连接被关闭。
func NewWsServer(wsConn *websocket.Conn, l logx.Logger, readLimit int64) *WsServer {
	if readLimit > 0 {
		wsConn.SetReadLimit(readLimit)
	}
	return &WsServer{
		conn:    wsConn,
		outChan: make(chan *WsMsgResp, outChanSize),
		done:    make(chan struct{}),
		log:     l,
	}
}

func (s *WsServer) Router(router *Router) {
	s.router = router
}

func (s *WsServer) send(resp *WsMsgResp) {
	select {
	case s.outChan <- resp:
	case <-s.done:
	}
}

func (s *WsServer) Run() {
	go s.readMsgLoop()
	go s.writeMsgLoop()
}

func (s *WsServer) readMsgLoop() {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error("ws readMsgLoop panic", zap.String("err", fmt.Sprintf("%v", err)))
		}
		s.Close()
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Error("ws_server read msg", zap.Error(err))
			}
			return
		}

		reqBody := ReqBody{}
		if err := json.Unmarshal(data, &reqBody); err != nil {
			s.log.Warn("ws_server readMsgLoop unmarshal json error", zap.Error(err))
			continue
		}

		// req 和 resp 的 Seq 必须一致
		req := WsMsgReq{Body: &reqBody}
		resp := WsMsgResp{Body: &RespBody{Seq: reqBody.Seq, Name: reqBody.Name}}
		if reqBody.Name == HeartbeatMsg {
			h := &Heartbeat{}
			if err := mapstructure.Decode(reqBody.Msg, h); err != nil {
				s.log.Debug("ws_server heartbeat decode", zap.Error(err))
			}
			h.STime = time.Now().UnixMilli()
			resp.Body.Msg = h
		} else {
			s.log.Debug("ws_server read msg", zap.String("name", reqBody.Name), zap.Int64("seq", reqBody.Seq))
			s.router.Dispatch(&req, &resp)
		}

		s.send(&resp)
	}
}

func (s *WsServer) writeMsgLoop() {
	for {
		select {
		case msg := <-s.outChan:
			s.write(msg)
		case <-s.done:
			return
		}
	}
}

// Close 可重复调用；读写协程都会随之退出。
func (s *WsServer) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
		close(s.done)
	})
}

func (s *WsServer) write(msg *WsMsgResp) {
	data, err := json.Marshal(msg.Body)
	if err != nil {
		s.log.Error("ws_server write marshal json error", zap.Error(err))
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.log.Error("ws_server write error", zap.Error(err))
	}
}
