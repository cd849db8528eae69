package entities

import (
	"github.com/onepoint10/dxf-inspector/core"
)

type Point struct {
	BaseEntity
	Location core.Point
}

func init() {
	Register("POINT", func() Entity { return &Point{BaseEntity: BaseEntity{TypeName: "POINT"}} })
}

func (p *Point) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			p.LayerName = t.AsString()
		case 10:
			p.Location.X = t.AsFloat()
		case 20:
			p.Location.Y = t.AsFloat()
		case 30:
			p.Location.Z = t.AsFloat()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (p *Point) BBox() core.BBox {
	return core.BBox{Min: p.Location, Max: p.Location}
}
