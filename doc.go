package dxf

import (
	"io"
	"os"
	"strings"

	"github.com/onepoint10/dxf-inspector/core"
	"github.com/onepoint10/dxf-inspector/entities"
)

// Header 图纸头部信息（$ACADVER 等变量）
type Header struct {
	Version     string // $ACADVER，如 AC1024
	Units       int    // $INSUNITS，4 = 毫米
	Measurement int    // $MEASUREMENT，0 = 英制，1 = 公制
}

type Document struct {
	Header   Header
	Entities []entities.Entity
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	var name string
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		switch tag.Code {
		case 9:
			name = strings.ToUpper(tag.AsString())
		case 1:
			if name == "$ACADVER" {
				d.Header.Version = tag.AsString()
			}
		case 70:
			switch name {
			case "$INSUNITS":
				d.Header.Units = tag.AsInt()
			case "$MEASUREMENT":
				d.Header.Measurement = tag.AsInt()
			}
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 {
			ent := entities.CreateEntity(strings.ToUpper(tag.Value))
			if ent != nil {
				ent.Parse(scanner)
				d.Entities = append(d.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

// skipSection 跳过不关心的段（BLOCKS、TABLES、OBJECTS 等）
func skipSection(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Entities: make([]entities.Entity, 0, 1024),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "HEADER":
				document.parseHeader(scanner)
			case "ENTITIES":
				document.parseEntities(scanner)
			default:
				skipSection(scanner)
			}
		}
	}

	return document, scanner.Err()
}
