package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/zooyer/golib/xmath"

	"github.com/onepoint10/dxf-inspector/core"
	"github.com/onepoint10/dxf-inspector/entities"
)

func mustLength(t *testing.T, entity entities.Entity) float64 {
	t.Helper()

	length, _, err := EntityLength(entity, Options{})
	if err != nil {
		t.Fatalf("计算 %s 长度失败: %v", entity.Type(), err)
	}

	return length
}

func TestEntityLength_Line(t *testing.T) {
	var (
		a = core.Point{X: 0, Y: 0}
		b = core.Point{X: 3, Y: 4}
	)

	forward := mustLength(t, &entities.Line{Start: a, End: b})
	backward := mustLength(t, &entities.Line{Start: b, End: a})

	if forward != 5 {
		t.Errorf("长度期望 5, 得到 %v", forward)
	}
	if forward != backward {
		t.Error("AB 和 BA 长度应相同")
	}
}

func TestEntityLength_Circle(t *testing.T) {
	length := mustLength(t, &entities.Circle{Radius: 50})
	if !xmath.Equal(length, 314.159, 1e-3) {
		t.Errorf("半径 50 周长期望 ≈314.159, 得到 %v", length)
	}
}

func TestEntityLength_Arc(t *testing.T) {
	arc := &entities.Arc{Radius: 10, StartAngle: 0, EndAngle: 90}
	if length := mustLength(t, arc); !xmath.Equal(length, 15.708, 1e-3) {
		t.Errorf("90° 弧长期望 ≈15.708, 得到 %v", length)
	}

	// 跨 0/360 边界：350° 到 10° 是 20°，不能得到负数或一大圈
	arc = &entities.Arc{Radius: 10, StartAngle: 350, EndAngle: 10}
	if length := mustLength(t, arc); !xmath.Equal(length, 3.491, 1e-3) {
		t.Errorf("跨界弧长期望 ≈3.491, 得到 %v", length)
	}
}

func TestEntityLength_Point(t *testing.T) {
	if length := mustLength(t, &entities.Point{Location: core.Point{X: 5, Y: 5}}); length != 0 {
		t.Errorf("点长度期望 0, 得到 %v", length)
	}
}

func TestEntityLength_Rectangle(t *testing.T) {
	// 100×150 的闭合矩形，周长 500
	rect := &entities.LWPolyline{
		Closed: true,
		Vertices: []entities.Vertex{
			{Point: core.Point{X: 0, Y: 0}},
			{Point: core.Point{X: 100, Y: 0}},
			{Point: core.Point{X: 100, Y: 150}},
			{Point: core.Point{X: 0, Y: 150}},
		},
	}

	if length := mustLength(t, rect); !xmath.Equal(length, 500, 1e-9) {
		t.Errorf("矩形周长期望 500, 得到 %v", length)
	}
}

func TestEntityLength_PolylineBulge(t *testing.T) {
	// 两点相距 10，膨出值 1 是半圆，长度 5π
	poly := &entities.LWPolyline{
		Vertices: []entities.Vertex{
			{Point: core.Point{X: 0, Y: 0}, Bulge: 1},
			{Point: core.Point{X: 10, Y: 0}},
		},
	}

	if length := mustLength(t, poly); !xmath.Equal(length, 15.708, 1e-3) {
		t.Errorf("半圆段长度期望 ≈15.708, 得到 %v", length)
	}

	// 闭合回绕段用最后一个顶点的膨出值：半圆去 + 半圆回 = 整圆 10π
	poly.Closed = true
	poly.Vertices[1].Bulge = 1
	if length := mustLength(t, poly); !xmath.Equal(length, 10*math.Pi, 1e-3) {
		t.Errorf("双半圆周长期望 %v, 得到 %v", 10*math.Pi, length)
	}
}

func TestEntityLength_OldPolyline(t *testing.T) {
	poly := &entities.Polyline{
		Vertices: []entities.Vertex{
			{Point: core.Point{X: 0, Y: 0}},
			{Point: core.Point{X: 0, Y: 0, Z: 5}},
			{Point: core.Point{X: 3, Y: 4, Z: 5}},
		},
	}

	// 三维顶点逐段求和：5 + 5 = 10
	if length := mustLength(t, poly); !xmath.Equal(length, 10, 1e-9) {
		t.Errorf("长度期望 10, 得到 %v", length)
	}
}

func TestEntityLength_FullEllipse(t *testing.T) {
	// 半轴 10 和 5，拉马努金近似 ≈48.44
	ellipse := &entities.Ellipse{
		MajorAxis: core.Point{X: 10},
		Ratio:     0.5,
		EndParam:  2 * math.Pi,
	}

	if length := mustLength(t, ellipse); !xmath.Equal(length, 48.44, 0.1) {
		t.Errorf("整椭圆周长期望 ≈48.44, 得到 %v", length)
	}
}

func TestEntityLength_PartialEllipse(t *testing.T) {
	// 轴比 1 的椭圆就是圆：四分之一圆弧长应接近 πr/2
	quarter := &entities.Ellipse{
		MajorAxis: core.Point{X: 10},
		Ratio:     1,
		EndParam:  math.Pi / 2,
	}

	want := math.Pi * 10 / 2
	if length := mustLength(t, quarter); !xmath.Equal(length, want, 0.01) {
		t.Errorf("四分之一圆弧长期望 ≈%v, 得到 %v", want, length)
	}

	// 参数跨 0/2π 边界：3π/2 到 π/2 也是半圈
	wrap := &entities.Ellipse{
		MajorAxis:  core.Point{X: 10},
		Ratio:      1,
		StartParam: 3 * math.Pi / 2,
		EndParam:   math.Pi / 2,
	}

	if length := mustLength(t, wrap); !xmath.Equal(length, math.Pi*10, 0.01) {
		t.Errorf("跨界半圆弧长期望 ≈%v, 得到 %v", math.Pi*10, length)
	}
}

func TestEntityLength_Spline(t *testing.T) {
	// 共线控制点的样条就是直线段
	spline := &entities.Spline{
		Degree: 3,
		Controls: []core.Point{
			{X: 0, Y: 0},
			{X: 5, Y: 0},
			{X: 10, Y: 0},
			{X: 15, Y: 0},
		},
	}

	if length := mustLength(t, spline); !xmath.Equal(length, 15, 1e-6) {
		t.Errorf("共线样条长度期望 15, 得到 %v", length)
	}

	// 控制点不足时退化为控制多边形
	short := &entities.Spline{
		Degree: 3,
		Controls: []core.Point{
			{X: 0, Y: 0},
			{X: 3, Y: 4},
		},
	}

	if length := mustLength(t, short); !xmath.Equal(length, 5, 1e-9) {
		t.Errorf("退化样条长度期望 5, 得到 %v", length)
	}
}

func TestEntityLength_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		entity entities.Entity
	}{
		{"零半径圆", &entities.Circle{Radius: 0}},
		{"负半径弧", &entities.Arc{Radius: -1, EndAngle: 90}},
		{"空顶点多段线", &entities.LWPolyline{}},
		{"NaN坐标线段", &entities.Line{End: core.Point{X: math.NaN()}}},
		{"零轴比椭圆", &entities.Ellipse{MajorAxis: core.Point{X: 10}, EndParam: 2 * math.Pi}},
		{"无控制点样条", &entities.Spline{Degree: 3}},
	}

	for _, tt := range tests {
		if _, _, err := EntityLength(tt.entity, Options{}); !errors.Is(err, ErrMalformedGeometry) {
			t.Errorf("%s: 期望 ErrMalformedGeometry, 得到 %v", tt.name, err)
		}
	}
}

func TestEntityLength_Unsupported(t *testing.T) {
	tests := []entities.Entity{
		&entities.Text{BaseEntity: entities.BaseEntity{TypeName: "TEXT"}},
		&entities.Insert{BaseEntity: entities.BaseEntity{TypeName: "INSERT"}},
		&entities.Dimension{BaseEntity: entities.BaseEntity{TypeName: "DIMENSION"}},
	}

	for _, entity := range tests {
		if _, _, err := EntityLength(entity, Options{}); !errors.Is(err, ErrUnsupportedEntity) {
			t.Errorf("%s: 期望 ErrUnsupportedEntity, 得到 %v", entity.Type(), err)
		}
	}
}
