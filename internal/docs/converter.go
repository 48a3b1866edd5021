package docs

import (
	"fmt"
	"strings"

	docs "google.golang.org/api/docs/v1"
)

// DocumentToMarkdown converts a document to Markdown. Headings, bold,
// italic, links, lists and tables are mapped to their Markdown equivalents;
// everything else degrades to plain text. Tabbed documents render each tab
// under its own heading; legacy documents render the body directly.
func DocumentToMarkdown(doc *docs.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}

	var md strings.Builder

	if doc.Title != "" {
		md.WriteString("# ")
		md.WriteString(doc.Title)
		md.WriteString("\n\n")
	}

	if len(doc.Tabs) > 0 {
		writeTabs(&md, doc.Tabs, 2, true)
	} else if doc.Body != nil {
		for _, element := range doc.Body.Content {
			writeStructuralElement(&md, element, true)
		}
	}

	return md.String(), nil
}

// DocumentToPlainText extracts the plain text of a document, covering both
// tabbed and legacy body-only documents.
func DocumentToPlainText(doc *docs.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}

	var text strings.Builder

	if doc.Title != "" {
		text.WriteString(doc.Title)
		text.WriteString("\n\n")
	}

	if len(doc.Tabs) > 0 {
		writeTabs(&text, doc.Tabs, 2, false)
	} else if doc.Body != nil {
		for _, element := range doc.Body.Content {
			writeStructuralElement(&text, element, false)
		}
	}

	return text.String(), nil
}

// writeTabs renders tabs and their child tabs recursively. In Markdown each
// tab title becomes a heading one level deeper than its parent, capped at H6.
func writeTabs(sb *strings.Builder, tabs []*docs.Tab, level int, markdown bool) {
	for i, tab := range tabs {
		title := ""
		if tab.TabProperties != nil {
			title = tab.TabProperties.Title
		}
		if title == "" {
			title = fmt.Sprintf("Tab %d", i+1)
		}

		if markdown {
			sb.WriteString(strings.Repeat("#", min(level, 6)))
			sb.WriteString(" ")
		}
		sb.WriteString(title)
		sb.WriteString("\n\n")

		if tab.DocumentTab != nil && tab.DocumentTab.Body != nil {
			for _, element := range tab.DocumentTab.Body.Content {
				writeStructuralElement(sb, element, markdown)
			}
		}

		writeTabs(sb, tab.ChildTabs, level+1, markdown)
	}
}

// writeStructuralElement renders one body element. markdown selects between
// Markdown and plain-text rendering.
func writeStructuralElement(sb *strings.Builder, element *docs.StructuralElement, markdown bool) {
	switch {
	case element.Paragraph != nil:
		writeParagraph(sb, element.Paragraph, markdown)
	case element.Table != nil:
		writeTable(sb, element.Table, markdown)
	case element.SectionBreak != nil:
		// Section breaks carry no text
	}
}

func writeParagraph(sb *strings.Builder, paragraph *docs.Paragraph, markdown bool) {
	var content strings.Builder
	for _, pe := range paragraph.Elements {
		if pe.TextRun != nil {
			writeTextRun(&content, pe.TextRun, markdown)
		}
	}

	text := content.String()
	if strings.TrimSpace(text) == "" {
		return
	}

	if markdown {
		if prefix := headingPrefix(paragraph); prefix != "" {
			sb.WriteString(prefix)
		} else if paragraph.Bullet != nil {
			sb.WriteString("- ")
		}
	}

	sb.WriteString(strings.TrimRight(text, "\n"))
	sb.WriteString("\n")
	if markdown && paragraph.Bullet == nil {
		sb.WriteString("\n")
	}
}

// headingPrefix maps a named paragraph style to a Markdown heading prefix.
// The document title is already rendered as H1, so headings shift down one
// level.
func headingPrefix(paragraph *docs.Paragraph) string {
	if paragraph.ParagraphStyle == nil {
		return ""
	}
	switch paragraph.ParagraphStyle.NamedStyleType {
	case "TITLE", "HEADING_1":
		return "## "
	case "HEADING_2":
		return "### "
	case "HEADING_3":
		return "#### "
	case "HEADING_4":
		return "##### "
	case "HEADING_5", "HEADING_6":
		return "###### "
	}
	return ""
}

func writeTextRun(sb *strings.Builder, run *docs.TextRun, markdown bool) {
	text := run.Content
	if text == "" {
		return
	}

	if !markdown {
		sb.WriteString(text)
		return
	}

	// Markers wrap the trimmed content so trailing newlines stay outside
	trimmed := strings.TrimRight(text, "\n")
	suffix := text[len(trimmed):]

	if run.TextStyle != nil && trimmed != "" {
		if run.TextStyle.Link != nil && run.TextStyle.Link.Url != "" {
			trimmed = fmt.Sprintf("[%s](%s)", trimmed, run.TextStyle.Link.Url)
		} else {
			if run.TextStyle.Bold {
				trimmed = "**" + trimmed + "**"
			}
			if run.TextStyle.Italic {
				trimmed = "*" + trimmed + "*"
			}
		}
	}

	sb.WriteString(trimmed)
	sb.WriteString(suffix)
}

func writeTable(sb *strings.Builder, table *docs.Table, markdown bool) {
	for rowIndex, row := range table.TableRows {
		var cells []string
		for _, cell := range row.TableCells {
			var cellText strings.Builder
			for _, element := range cell.Content {
				if element.Paragraph != nil {
					for _, pe := range element.Paragraph.Elements {
						if pe.TextRun != nil {
							cellText.WriteString(pe.TextRun.Content)
						}
					}
				}
			}
			cells = append(cells, strings.TrimSpace(cellText.String()))
		}

		if markdown {
			sb.WriteString("| ")
			sb.WriteString(strings.Join(cells, " | "))
			sb.WriteString(" |\n")
			if rowIndex == 0 {
				sb.WriteString("|")
				sb.WriteString(strings.Repeat(" --- |", len(cells)))
				sb.WriteString("\n")
			}
		} else {
			sb.WriteString(strings.Join(cells, "\t"))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
}
