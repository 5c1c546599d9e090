package geopkg

import "strings"

// Field is one column of a Table or FeatureClass.
type Field struct {
	Name string
	Type FieldType
}

func (f Field) columnDef() string {
	return quoteIdent(f.Name) + " " + string(f.Type)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// columnList renders fields as a DDL column-list fragment, leading
// with a comma so it can be appended directly after a fixed prefix
// (fid, or fid + geometry column).
func columnList(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.columnDef()
	}
	return ", " + strings.Join(parts, ", ")
}
