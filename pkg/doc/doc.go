// Package doc models the parsed wiki page that epntex converts.
//
// A page is a tree of [Element] nodes whose children are either further
// elements or [Text] runs. The tree is built once from HTML by [Parse] and is
// read-only afterwards; nothing in the conversion pipeline mutates it.
//
// # Structure recovery
//
// Confluence renders a page body as a flat list of siblings: h1, p, h2, p,
// table, h2, h3 and so on. [SiblingsAtLevel] and [CollectUntil] rebuild the
// implicit heading hierarchy from that list by scanning forward from a
// heading [Position]:
//
//	for _, h1 := range d.FindAll(doc.KindH1) {
//	    for h2 := range doc.SiblingsAtLevel(h1, doc.KindH2, doc.KindH1) {
//	        body := doc.CollectUntil(h2, doc.KindH1, doc.KindH2)
//	        ...
//	    }
//	}
//
// Reaching the end of the sibling list and meeting a stop heading are the
// same thing; neither is an error.
package doc
