package ws

import (
	"encoding/json"
	"errors"
)

// BindJSON 将 WsMsgReq.Body.Msg 反序列化到目标结构体。
// 走一次 JSON 往返，目标类型上的 json tag 和自定义 UnmarshalJSON 都会生效。
func BindJSON(req *WsMsgReq, dst any) error {
	if req == nil || req.Body == nil {
		return errors.New("ws request body is nil")
	}
	if req.Body.Msg == nil {
		return errors.New("ws request msg is empty")
	}
	raw, err := json.Marshal(req.Body.Msg)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
