package core

import (
	"math"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Point 代表三维空间中的一个点（二维图纸 Z 为 0）
type Point struct {
	X, Y, Z float64
}

// Distance 计算到另一点的欧氏距离，三个分量都参与
func (p Point) Distance(q Point) float64 {
	var (
		dx = q.X - p.X
		dy = q.Y - p.Y
		dz = q.Z - p.Z
	)

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsFinite 判断坐标是否全部有限（NaN/Inf 视为坏数据）
func (p Point) IsFinite() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// NewBBox 由任意两点构造包围盒，保证 Min <= Max
func NewBBox(p, q Point) BBox {
	return BBox{
		Min: Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y), Z: math.Min(p.Z, q.Z)},
		Max: Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y), Z: math.Max(p.Z, q.Z)},
	}
}

// Merge 合并另一个包围盒，逐分量取最小/最大
func (b BBox) Merge(o BBox) BBox {
	return BBox{
		Min: Point{
			X: math.Min(b.Min.X, o.Min.X),
			Y: math.Min(b.Min.Y, o.Min.Y),
			Z: math.Min(b.Min.Z, o.Min.Z),
		},
		Max: Point{
			X: math.Max(b.Max.X, o.Max.X),
			Y: math.Max(b.Max.Y, o.Max.Y),
			Z: math.Max(b.Max.Z, o.Max.Z),
		},
	}
}

// Extend 合并一个点
func (b BBox) Extend(p Point) BBox {
	return b.Merge(BBox{Min: p, Max: p})
}

// Width 包围盒宽度
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height 包围盒高度
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}
