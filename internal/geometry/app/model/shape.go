package model

import "TriGrid/internal/geometry/domain"

type CoordinatesReq struct {
	Kind      domain.ShapeKind
	Grid      domain.Grid
	CellToken string
}

type CellReferenceReq struct {
	Kind     domain.ShapeKind
	Grid     domain.Grid
	Vertices []domain.Coordinate
}
