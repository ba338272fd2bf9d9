package dto

import (
	"TriGrid/internal/geometry/app/model"
	"TriGrid/internal/geometry/domain"
)

// CoordinatesReq 对应 HTTP/WS/gRPC 三种入口共用的请求体，字段名与既有 API 保持一致。
type CoordinatesReq struct {
	ShapeType domain.ShapeKind `json:"shapeType"`
	Grid      domain.Grid      `json:"grid"`
	GridValue string           `json:"gridValue"`
}

type CoordinatesResp struct {
	Coordinates []domain.Coordinate `json:"coordinates"`
}

type CellReferenceReq struct {
	ShapeType domain.ShapeKind    `json:"shapeType"`
	Grid      domain.Grid         `json:"grid"`
	Vertices  []domain.Coordinate `json:"vertices"`
}

type CellReferenceResp struct {
	Row    string `json:"row"`
	Column int    `json:"column"`
}

func (r CoordinatesReq) ToModel() model.CoordinatesReq {
	return model.CoordinatesReq{
		Kind:      r.ShapeType,
		Grid:      r.Grid,
		CellToken: r.GridValue,
	}
}

func (r CellReferenceReq) ToModel() model.CellReferenceReq {
	return model.CellReferenceReq{
		Kind:     r.ShapeType,
		Grid:     r.Grid,
		Vertices: r.Vertices,
	}
}

func NewCoordinatesResp(shape domain.Shape) CoordinatesResp {
	coords := make([]domain.Coordinate, len(shape))
	copy(coords, shape)
	return CoordinatesResp{Coordinates: coords}
}

func NewCellReferenceResp(ref domain.CellReference) CellReferenceResp {
	return CellReferenceResp{Row: ref.Row(), Column: ref.Column()}
}
