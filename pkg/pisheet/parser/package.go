// Package parser reads the parts of a saved xlsx package that excelize does
// not surface for uncalculated workbooks: formula text, drawings and charts.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Package is an open xlsx archive with its sheet parts resolved.
type Package struct {
	zr     *zip.ReadCloser
	order  []string
	sheets map[string]string // sheet name -> worksheet part
	sst    []string
}

// sheetRef is a sheet entry of xl/workbook.xml.
type sheetRef struct {
	name string
	rID  string
}

// OpenPackage opens the xlsx file at path and resolves its worksheets.
func OpenPackage(path string) (*Package, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	p := &Package{zr: zr, sheets: make(map[string]string)}

	workbookXML, err := p.read("xl/workbook.xml")
	if err != nil {
		zr.Close()
		return nil, err
	}
	if workbookXML == nil {
		zr.Close()
		return nil, fmt.Errorf("missing xl/workbook.xml")
	}
	refs := parseWorkbookSheets(workbookXML)

	relsXML, err := p.read("xl/_rels/workbook.xml.rels")
	if err != nil {
		zr.Close()
		return nil, err
	}
	files := parseWorkbookRels(relsXML)
	for _, ref := range refs {
		if part, ok := files[ref.rID]; ok {
			p.order = append(p.order, ref.name)
			p.sheets[ref.name] = part
		}
	}

	sstXML, err := p.read("xl/sharedStrings.xml")
	if err != nil {
		zr.Close()
		return nil, err
	}
	p.sst = parseSharedStrings(sstXML)
	return p, nil
}

// Close closes the underlying archive.
func (p *Package) Close() error {
	return p.zr.Close()
}

// SheetNames returns the worksheet names in workbook order.
func (p *Package) SheetNames() []string {
	return append([]string(nil), p.order...)
}

// read returns the content of the named part, or nil if it does not exist.
func (p *Package) read(name string) ([]byte, error) {
	for _, f := range p.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// relsPath returns the relationships part belonging to part.
func relsPath(part string) string {
	idx := strings.LastIndex(part, "/")
	return part[:idx] + "/_rels/" + part[idx+1:] + ".rels"
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) []sheetRef {
	var result []sheetRef
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			ref := sheetRef{name: attr(se, "name"), rID: attr(se, "id")}
			if ref.name != "" && ref.rID != "" {
				result = append(result, ref)
			}
		}
	}

	return result
}

// parseWorkbookRels maps relationship id to worksheet part.
func parseWorkbookRels(data []byte) map[string]string {
	result := make(map[string]string)
	for id, rel := range parseRels(data) {
		if strings.Contains(strings.ToLower(rel.kind), "worksheet") {
			result[id] = resolveRelativePath(rel.target, "xl")
		}
	}
	return result
}

type relationship struct {
	kind   string
	target string
}

// parseRels parses a relationships part keyed by relationship id.
func parseRels(data []byte) map[string]relationship {
	result := make(map[string]relationship)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			result[attr(se, "Id")] = relationship{kind: attr(se, "Type"), target: attr(se, "Target")}
		}
	}

	return result
}

// findRelationship returns the target of the first relationship whose type
// contains kind.
func findRelationship(data []byte, kind string) string {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.HasSuffix(strings.ToLower(attr(se, "Type")), "/"+kind) {
				return attr(se, "Target")
			}
		}
	}

	return ""
}
