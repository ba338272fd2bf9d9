package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ShapeKind 是请求的形状类别。当前只支持 Triangle，其余（含未设置）一律视为不支持。
type ShapeKind int

const (
	ShapeKindNone ShapeKind = iota
	ShapeKindTriangle
	ShapeKindOther
)

var shapeKindNames = map[ShapeKind]string{
	ShapeKindNone:     "None",
	ShapeKindTriangle: "Triangle",
	ShapeKindOther:    "Other",
}

func (k ShapeKind) String() string {
	if name, ok := shapeKindNames[k]; ok {
		return name
	}
	return "ShapeKind(" + strconv.Itoa(int(k)) + ")"
}

// Supported 报告该类别能否进入几何计算。
func (k ShapeKind) Supported() bool {
	return k == ShapeKindTriangle
}

// ParseShapeKind 接受名称（大小写不敏感）或数字编码；未知名称得到 ShapeKindOther。
func ParseShapeKind(s string) ShapeKind {
	s = strings.TrimSpace(s)
	if s == "" {
		return ShapeKindNone
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ShapeKind(n)
	}
	for k, name := range shapeKindNames {
		if strings.EqualFold(name, s) {
			return k
		}
	}
	return ShapeKindOther
}

// UnmarshalJSON 同时兼容数字编码（1）与名称（"Triangle"）。
func (k *ShapeKind) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*k = ShapeKindNone
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = ParseShapeKind(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("shape kind: %w", err)
	}
	*k = ShapeKind(n)
	return nil
}

func (k ShapeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
