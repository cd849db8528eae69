package entities

import (
	"github.com/onepoint10/dxf-inspector/core"
)

type Spline struct {
	BaseEntity
	Degree   int
	Closed   bool
	Controls []core.Point
	Knots    []float64
	Weights  []float64
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}, Degree: 3} })
}

func (sp *Spline) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			sp.LayerName = t.AsString()
		case 70:
			sp.Closed = t.AsInt()&1 == 1
		case 71:
			sp.Degree = t.AsInt()
		case 40:
			sp.Knots = append(sp.Knots, t.AsFloat())
		case 41:
			sp.Weights = append(sp.Weights, t.AsFloat())
		case 10:
			sp.Controls = append(sp.Controls, core.Point{X: t.AsFloat()})
		case 20:
			if n := len(sp.Controls); n > 0 {
				sp.Controls[n-1].Y = t.AsFloat()
			}
		case 30:
			if n := len(sp.Controls); n > 0 {
				sp.Controls[n-1].Z = t.AsFloat()
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// BBox 控制点凸包的包围盒，B样条曲线不会越出控制多边形
func (sp *Spline) BBox() core.BBox {
	if len(sp.Controls) == 0 {
		return core.BBox{}
	}
	box := core.BBox{Min: sp.Controls[0], Max: sp.Controls[0]}
	for _, p := range sp.Controls[1:] {
		box = box.Extend(p)
	}
	return box
}
