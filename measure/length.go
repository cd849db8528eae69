package measure

import (
	"errors"
	"fmt"
	"math"

	"github.com/onepoint10/dxf-inspector/entities"
)

var (
	// ErrInvalidInput 实体序列本身缺失（nil），属于调用方违反前置条件
	ErrInvalidInput = errors.New("measure: 实体序列缺失")
	// ErrUnsupportedEntity 实体类型不在支持范围内（上游漏过来的注释类实体等）
	ErrUnsupportedEntity = errors.New("measure: 不支持的实体类型")
	// ErrMalformedGeometry 几何参数非法（半径非正、顶点列表为空、坐标非有限值等）
	ErrMalformedGeometry = errors.New("measure: 非法几何参数")
)

// Options 测量配置，零值等同默认值
type Options struct {
	Tolerance float64 // 曲线展平最大偏差(mm)，默认 0.01
	MaxDepth  int     // 展平递归深度上限，默认 16
}

const (
	DefaultTolerance = 0.01
	DefaultMaxDepth  = 16
)

func (o Options) normalize() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}

	return o
}

// EntityLength 计算单个实体的切割长度(mm)
// truncated 表示曲线展平达到深度上限，长度是尽力而为的近似
// 类型分支必须覆盖全部 8 种支持的实体，其余返回 ErrUnsupportedEntity
func EntityLength(entity entities.Entity, opt Options) (length float64, truncated bool, err error) {
	opt = opt.normalize()

	switch e := entity.(type) {
	case *entities.Line:
		if !e.Start.IsFinite() || !e.End.IsFinite() {
			return 0, false, fmt.Errorf("%w: 坐标含 NaN/Inf", ErrMalformedGeometry)
		}
		return e.Start.Distance(e.End), false, nil
	case *entities.Circle:
		if e.Radius <= 0 {
			return 0, false, fmt.Errorf("%w: 圆半径 %v", ErrMalformedGeometry, e.Radius)
		}
		return 2 * math.Pi * e.Radius, false, nil
	case *entities.Arc:
		if e.Radius <= 0 {
			return 0, false, fmt.Errorf("%w: 弧半径 %v", ErrMalformedGeometry, e.Radius)
		}
		return ArcLength(e.Radius, SweepRadians(e.StartAngle, e.EndAngle)), false, nil
	case *entities.LWPolyline:
		length, err = polylineLength(e.Vertices, e.Closed)
		return length, false, err
	case *entities.Polyline:
		length, err = polylineLength(e.Vertices, e.Closed)
		return length, false, err
	case *entities.Spline:
		return splineLength(e, opt)
	case *entities.Ellipse:
		return ellipseLength(e, opt)
	case *entities.Point:
		// 点没有长度
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %s", ErrUnsupportedEntity, entity.Type())
	}
}

// polylineLength 逐段求和，含闭合回绕段；段起点带膨出值的按圆弧计长
func polylineLength(vertices []entities.Vertex, closed bool) (length float64, err error) {
	if len(vertices) == 0 {
		return 0, fmt.Errorf("%w: 顶点列表为空", ErrMalformedGeometry)
	}

	for _, v := range vertices {
		if !v.Point.IsFinite() {
			return 0, fmt.Errorf("%w: 顶点坐标含 NaN/Inf", ErrMalformedGeometry)
		}
	}

	for i := 0; i+1 < len(vertices); i++ {
		length += bulgeSegment(vertices[i].Point, vertices[i+1].Point, vertices[i].Bulge)
	}

	if closed && len(vertices) > 1 {
		last := len(vertices) - 1
		length += bulgeSegment(vertices[last].Point, vertices[0].Point, vertices[last].Bulge)
	}

	return
}

func splineLength(sp *entities.Spline, opt Options) (length float64, truncated bool, err error) {
	if len(sp.Controls) == 0 {
		return 0, false, fmt.Errorf("%w: 样条没有控制点", ErrMalformedGeometry)
	}

	for _, p := range sp.Controls {
		if !p.IsFinite() {
			return 0, false, fmt.Errorf("%w: 控制点坐标含 NaN/Inf", ErrMalformedGeometry)
		}
	}

	// 控制点不足一个完整节距时退化为控制多边形
	if len(sp.Controls) <= sp.Degree || sp.Degree < 1 {
		var points []entities.Vertex
		for _, p := range sp.Controls {
			points = append(points, entities.Vertex{Point: p})
		}
		length, err = polylineLength(points, sp.Closed)
		return length, false, err
	}

	points, truncated := Flatten(newSplineCurve(sp), 0, 1, opt.Tolerance, opt.MaxDepth)

	return polylineDistance(points), truncated, nil
}

func ellipseLength(e *entities.Ellipse, opt Options) (length float64, truncated bool, err error) {
	major := math.Sqrt(e.MajorAxis.X*e.MajorAxis.X + e.MajorAxis.Y*e.MajorAxis.Y + e.MajorAxis.Z*e.MajorAxis.Z)

	switch {
	case !e.Center.IsFinite() || !e.MajorAxis.IsFinite():
		return 0, false, fmt.Errorf("%w: 坐标含 NaN/Inf", ErrMalformedGeometry)
	case major <= 0:
		return 0, false, fmt.Errorf("%w: 长轴向量退化", ErrMalformedGeometry)
	case e.Ratio <= 0:
		return 0, false, fmt.Errorf("%w: 轴比 %v", ErrMalformedGeometry, e.Ratio)
	}

	start, end := ellipseSpan(e)

	// 整椭圆走拉马努金周长近似：π·[3(a+b) − √((3a+b)(a+3b))]
	if end-start >= 2*math.Pi-fullTurnTolerance {
		var (
			a = major
			b = major * e.Ratio
		)
		return math.Pi * (3*(a+b) - math.Sqrt((3*a+b)*(a+3*b))), false, nil
	}

	points, truncated := Flatten(newEllipseCurve(e), start, end, opt.Tolerance, opt.MaxDepth)

	return polylineDistance(points), truncated, nil
}

// ellipseSpan 归一化后的参数区间，end < start 时跨 0/2π 边界补一整圈
func ellipseSpan(e *entities.Ellipse) (start, end float64) {
	start, end = e.StartParam, e.EndParam
	if end < start {
		end += 2 * math.Pi
	}

	return
}
