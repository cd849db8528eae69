package entities

import (
	"strings"

	"github.com/onepoint10/dxf-inspector/core"
)

// Polyline 旧式多段线，顶点以 VERTEX 子实体的形式跟在本体之后，直到 SEQEND
type Polyline struct {
	BaseEntity
	Vertices []Vertex
	Closed   bool
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
}

func (p *Polyline) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			p.LayerName = t.AsString()
		case 70:
			p.Closed = t.AsInt()&1 == 1
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}

	// 继续在当前流中抓取 VERTEX 直到 SEQEND
	for {
		t := s.LastTag
		if t.Code == 0 {
			switch strings.ToUpper(t.Value) {
			case "SEQEND":
				s.Next() // 消耗掉 SEQEND
				return nil
			case "VERTEX":
				var vertex Vertex
				for s.Next() {
					vt := s.LastTag
					if vt.Code == 0 {
						break
					}
					switch vt.Code {
					case 10:
						vertex.Point.X = vt.AsFloat()
					case 20:
						vertex.Point.Y = vt.AsFloat()
					case 30:
						vertex.Point.Z = vt.AsFloat()
					case 42:
						vertex.Bulge = vt.AsFloat()
					}
				}
				p.Vertices = append(p.Vertices, vertex)
				continue // 内层已经读到下一个 0 组码
			default:
				// 顶点流之外的实体，交还给上层
				return nil
			}
		}
		if !s.Next() {
			return nil
		}
	}
}

func (p *Polyline) BBox() core.BBox {
	if len(p.Vertices) == 0 {
		return core.BBox{}
	}
	box := core.BBox{Min: p.Vertices[0].Point, Max: p.Vertices[0].Point}
	for _, v := range p.Vertices[1:] {
		box = box.Extend(v.Point)
	}
	return box
}
