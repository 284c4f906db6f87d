// Package latex turns a [doc] tree into LaTeX markup.
//
// # Rendering
//
// A [Renderer] walks an element tree and picks a rule per element kind. Most
// rules wrap the rendered children in fixed markup (\emph{...},
// \begin{itemize}...); a few look at the [Ancestors] of the element being
// rendered:
//
//   - p inside a table renders its content only; elsewhere it is followed
//     by a blank line.
//   - br renders as \\ except at the top level or anywhere inside a table,
//     where LaTeX would choke on it.
//
// An element kind without a rule aborts the render with
// UNKNOWN_NODE_KIND. Dropping unknown elements silently has lost content
// before, so the renderer refuses to guess.
//
// # Tables
//
// Tables are rendered generically (first row is the header, one l column per
// header cell) and then passed through a closed list of [TableHack]s, each
// keyed by a landmark string found in the rendered markup. What happens to a
// table no hack recognizes is decided by the [TablePolicy].
//
// # Example
//
//	r := latex.New(latex.Options{TablePolicy: latex.TablePermissive})
//	out, err := r.Render(el)
package latex
