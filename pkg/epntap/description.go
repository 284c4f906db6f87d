package epntap

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/epntex/pkg/doc"
)

// sectionNumber matches the "3- " style numbering of h2 headings.
var sectionNumber = regexp.MustCompile(`\d\d?- `)

func (d *Driver) writeColumnDescription(_ context.Context, page *doc.Document, out *Sink) (int, error) {
	sections := 0
	for _, h1 := range page.FindAll(doc.KindH1) {
		title := strings.TrimSpace(doc.TextContent(h1.Node()))
		if IsIgnored(title) {
			d.logger.Debug("skipping ignored section", "title", title)
			continue
		}

		if err := out.Emit(fmt.Sprintf(
			"%% To ignore the following section, add '%s' to IgnoredSections\n",
			strings.ReplaceAll(title, "\n", " "))); err != nil {
			return sections, err
		}
		if err := d.emitSection(h1, out); err != nil {
			return sections, fmt.Errorf("section %q: %w", title, err)
		}
		sections++
		d.logger.Debug("section written", "title", title)
	}
	return sections, nil
}

// emitSection writes one h1 with its h2 and h3 subsections.
func (d *Driver) emitSection(h1 doc.Position, out *Sink) error {
	s, err := d.renderer.Render(h1.Element())
	if err != nil {
		return err
	}
	if err := out.Emit(s); err != nil {
		return err
	}

	for h2 := range doc.SiblingsAtLevel(h1, doc.KindH2, doc.KindH1) {
		s, err := d.renderer.Render(h2.Element())
		if err != nil {
			return err
		}
		if err := out.Emit(sectionNumber.ReplaceAllString(s, "")); err != nil {
			return err
		}

		for h3 := range doc.SiblingsAtLevel(h2, doc.KindH3, doc.KindH2) {
			if err := d.emitParameter(h3, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitParameter writes an h3 and the free-form body up to the next heading.
func (d *Driver) emitParameter(h3 doc.Position, out *Sink) error {
	head, err := d.renderer.Render(h3.Element())
	if err != nil {
		return err
	}
	if err := out.Emit(head); err != nil {
		return err
	}
	body, err := d.renderer.RenderNodes(doc.CollectUntil(h3, headingLevels...))
	if err != nil {
		return fmt.Errorf("parameter %q: %w", strings.TrimSpace(doc.TextContent(h3.Node())), err)
	}
	return out.Emit(body)
}
