package epntap

import "github.com/matzehuels/epntex/pkg/doc"

// Document names, as used on the command line.
const (
	ColumnDescription = "columndescription"
	ColumnTable       = "columntable"
)

// Documents lists the documents a Driver can write.
var Documents = []string{ColumnDescription, ColumnTable}

// IgnoredSections are h1 texts of the descriptions page that are not
// parameter documentation.
var IgnoredSections = map[string]struct{}{
	"Europlanet2020-RI/VESPA Discussions Board": {},
	"EPN-TAP v2 parameter description":          {},
}

// IsIgnored reports whether a section heading is in IgnoredSections.
func IsIgnored(title string) bool {
	_, ok := IgnoredSections[title]
	return ok
}

// ColumnLabels names the cells of a metadata table row, in order.
var ColumnLabels = []string{
	"name", "mandatory", "type", "unit", "description",
	"ucd", "ucd_obscore", "utype", "comments",
}

// TableColumns are the record fields that make it into the longtable.
var TableColumns = ColumnLabels[:6]

// SeparatorStyle is the inline style of the span the page authors use to
// mark section separator rows.
const SeparatorStyle = "color: rgb(255,0,0);"

// TableSelector locates the metadata table on the parameters page.
const TableSelector = "table.wrapped.relative-table.confluenceTable"

// headingLevels are the kinds that end a section body.
var headingLevels = []doc.Kind{doc.KindH1, doc.KindH2, doc.KindH3}
