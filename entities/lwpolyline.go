package entities

import (
	"github.com/onepoint10/dxf-inspector/core"
)

// Vertex 多段线顶点，Bulge 编码到下一个顶点的圆弧（tan(夹角/4)）
type Vertex struct {
	Point core.Point
	Bulge float64
}

type LWPolyline struct {
	BaseEntity
	Vertices []Vertex
	Closed   bool
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			l.LayerName = t.AsString()
		case 70:
			// 组码 70 位 0 表示闭合
			l.Closed = t.AsInt()&1 == 1
		case 10:
			// 组码 10 开启一个新顶点，20/42 跟在其后
			l.Vertices = append(l.Vertices, Vertex{Point: core.Point{X: t.AsFloat()}})
		case 20:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Point.Y = t.AsFloat()
			}
		case 42:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Bulge = t.AsFloat()
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	box := core.BBox{Min: l.Vertices[0].Point, Max: l.Vertices[0].Point}
	for _, v := range l.Vertices[1:] {
		box = box.Extend(v.Point)
	}
	return box
}
