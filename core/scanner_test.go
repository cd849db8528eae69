package core

import (
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
}

func TestScanner_SkipComment(t *testing.T) {
	// 999 是注释标签，应当被跳过
	dxfData := "999\n这是注释\n0\nLINE\n8\nCutLayer\n"
	scanner := NewScanner(strings.NewReader(dxfData))

	if !scanner.Next() {
		t.Fatalf("读取失败: %v", scanner.Err())
	}
	if scanner.LastTag.Code != 0 || scanner.LastTag.Value != "LINE" {
		t.Errorf("注释未跳过: 得到 %+v", scanner.LastTag)
	}
	if !scanner.Next() || scanner.LastTag.Code != 8 {
		t.Errorf("期望图层标签, 得到 %+v", scanner.LastTag)
	}
}

func TestTag_Convert(t *testing.T) {
	tag := Tag{Code: 40, Value: " 3.14 "}
	if tag.AsFloat() != 3.14 {
		t.Errorf("AsFloat 期望 3.14, 得到 %v", tag.AsFloat())
	}

	tag = Tag{Code: 70, Value: " 1"}
	if tag.AsInt() != 1 {
		t.Errorf("AsInt 期望 1, 得到 %v", tag.AsInt())
	}
}

func TestPoint_Distance(t *testing.T) {
	var (
		p = Point{X: 0, Y: 0, Z: 0}
		q = Point{X: 3, Y: 4, Z: 0}
	)

	if d := p.Distance(q); d != 5 {
		t.Errorf("距离期望 5, 得到 %v", d)
	}
	if p.Distance(q) != q.Distance(p) {
		t.Error("距离应当对称")
	}

	// Z 分量参与计算
	q = Point{X: 1, Y: 2, Z: 2}
	if d := p.Distance(q); d != 3 {
		t.Errorf("三维距离期望 3, 得到 %v", d)
	}
}

func TestBBox_Merge(t *testing.T) {
	var (
		a = BBox{Min: Point{X: 0, Y: 0}, Max: Point{X: 10, Y: 10}}
		b = BBox{Min: Point{X: -5, Y: 5}, Max: Point{X: 5, Y: 20}}
	)

	merged := a.Merge(b)
	if merged.Min.X != -5 || merged.Min.Y != 0 || merged.Max.X != 10 || merged.Max.Y != 20 {
		t.Errorf("合并结果不符: %+v", merged)
	}
	if merged.Width() != 15 || merged.Height() != 20 {
		t.Errorf("宽高不符: %v x %v", merged.Width(), merged.Height())
	}
}
