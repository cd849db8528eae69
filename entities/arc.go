package entities

import (
	"math"

	"github.com/onepoint10/dxf-inspector/core"
)

type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64 // 角度制
	EndAngle   float64 // 角度制
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
}

func (a *Arc) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			a.LayerName = t.AsString()
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 30:
			a.Center.Z = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (a *Arc) point(deg float64) core.Point {
	rad := deg * math.Pi / 180
	return core.Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
		Z: a.Center.Z,
	}
}

// BBox 精确包围盒：两个端点，加上扫掠范围内经过的象限点
func (a *Arc) BBox() core.BBox {
	var (
		start = math.Mod(a.StartAngle, 360)
		end   = a.EndAngle
	)

	if start < 0 {
		start += 360
	}
	for end < start {
		end += 360
	}

	box := core.NewBBox(a.point(start), a.point(end))

	// 0/90/180/270 的象限点落在扫掠范围内时，圆弧会触及 center±radius
	for deg := math.Ceil(start/90) * 90; deg <= end; deg += 90 {
		box = box.Extend(a.point(deg))
	}

	return box
}
