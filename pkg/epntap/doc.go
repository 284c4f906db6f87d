// Package epntap writes the two LaTeX documents generated from the EPN-TAP v2
// Confluence pages: the long parameter descriptions and the metadata table.
//
// Both drivers walk a parsed [doc.Document], feed the relevant subtrees to a
// [latex.Renderer] and write the markup to a [Sink] as soon as each piece is
// rendered. A fatal render error stops the run; whatever was written before
// stays written, since the output is regenerated as a whole on every run.
//
// # Column descriptions
//
// The descriptions page is a flat list of h1/h2/h3 headings with free text
// between them. The driver rebuilds the hierarchy with
// [doc.SiblingsAtLevel] and renders the body following each h3 with
// [doc.CollectUntil]. Sections listed in [IgnoredSections] are skipped.
//
// # Column table
//
// The parameters page holds one large table. Each row becomes a [Record];
// rows the page authors coloured red are section separators and become
// headline records spanning the whole longtable.
package epntap
