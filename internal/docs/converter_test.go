package docs

import (
	"strings"
	"testing"

	docs "google.golang.org/api/docs/v1"
)

func paragraphWithText(text string) *docs.StructuralElement {
	return &docs.StructuralElement{
		Paragraph: &docs.Paragraph{
			Elements: []*docs.ParagraphElement{
				{TextRun: &docs.TextRun{Content: text}},
			},
		},
	}
}

func TestDocumentToMarkdown_Nil(t *testing.T) {
	if _, err := DocumentToMarkdown(nil); err == nil {
		t.Error("Expected error for nil document")
	}
	if _, err := DocumentToPlainText(nil); err == nil {
		t.Error("Expected error for nil document")
	}
}

func TestDocumentToMarkdown_TitleAndBody(t *testing.T) {
	doc := &docs.Document{
		Title: "Quarterly Report",
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				paragraphWithText("Hello world\n"),
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("DocumentToMarkdown returned error: %v", err)
	}

	if !strings.HasPrefix(md, "# Quarterly Report\n\n") {
		t.Errorf("Expected title as H1, got: %q", md)
	}
	if !strings.Contains(md, "Hello world") {
		t.Errorf("Expected body text, got: %q", md)
	}
}

func TestDocumentToMarkdown_Headings(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{style: "HEADING_1", expected: "## Section\n"},
		{style: "HEADING_2", expected: "### Section\n"},
		{style: "HEADING_3", expected: "#### Section\n"},
		{style: "HEADING_6", expected: "###### Section\n"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			doc := &docs.Document{
				Body: &docs.Body{
					Content: []*docs.StructuralElement{
						{
							Paragraph: &docs.Paragraph{
								ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: tt.style},
								Elements: []*docs.ParagraphElement{
									{TextRun: &docs.TextRun{Content: "Section\n"}},
								},
							},
						},
					},
				},
			}

			md, err := DocumentToMarkdown(doc)
			if err != nil {
				t.Fatalf("DocumentToMarkdown returned error: %v", err)
			}
			if !strings.Contains(md, tt.expected) {
				t.Errorf("Expected %q in output, got: %q", tt.expected, md)
			}
		})
	}
}

func TestDocumentToMarkdown_TextStyles(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Paragraph: &docs.Paragraph{
						Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{
								Content:   "bold text",
								TextStyle: &docs.TextStyle{Bold: true},
							}},
							{TextRun: &docs.TextRun{Content: " and "}},
							{TextRun: &docs.TextRun{
								Content:   "a link\n",
								TextStyle: &docs.TextStyle{Link: &docs.Link{Url: "https://example.com"}},
							}},
						},
					},
				},
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("DocumentToMarkdown returned error: %v", err)
	}

	if !strings.Contains(md, "**bold text**") {
		t.Errorf("Expected bold markers, got: %q", md)
	}
	if !strings.Contains(md, "[a link](https://example.com)") {
		t.Errorf("Expected markdown link, got: %q", md)
	}
}

func TestDocumentToMarkdown_Bullets(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Paragraph: &docs.Paragraph{
						Bullet: &docs.Bullet{ListId: "list1"},
						Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{Content: "first item\n"}},
						},
					},
				},
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("DocumentToMarkdown returned error: %v", err)
	}
	if !strings.Contains(md, "- first item\n") {
		t.Errorf("Expected bullet item, got: %q", md)
	}
}

func TestDocumentToMarkdown_Table(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Table: &docs.Table{
						TableRows: []*docs.TableRow{
							{
								TableCells: []*docs.TableCell{
									{Content: []*docs.StructuralElement{paragraphWithText("Name\n")}},
									{Content: []*docs.StructuralElement{paragraphWithText("Value\n")}},
								},
							},
							{
								TableCells: []*docs.TableCell{
									{Content: []*docs.StructuralElement{paragraphWithText("alpha\n")}},
									{Content: []*docs.StructuralElement{paragraphWithText("1\n")}},
								},
							},
						},
					},
				},
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("DocumentToMarkdown returned error: %v", err)
	}

	if !strings.Contains(md, "| Name | Value |") {
		t.Errorf("Expected table header row, got: %q", md)
	}
	if !strings.Contains(md, "| --- | --- |") {
		t.Errorf("Expected table separator row, got: %q", md)
	}
	if !strings.Contains(md, "| alpha | 1 |") {
		t.Errorf("Expected table data row, got: %q", md)
	}
}

func TestDocumentToPlainText(t *testing.T) {
	doc := &docs.Document{
		Title: "Notes",
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				{
					Paragraph: &docs.Paragraph{
						ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: "HEADING_1"},
						Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{Content: "Heading\n"}},
						},
					},
				},
				{
					Paragraph: &docs.Paragraph{
						Elements: []*docs.ParagraphElement{
							{TextRun: &docs.TextRun{
								Content:   "styled\n",
								TextStyle: &docs.TextStyle{Bold: true},
							}},
						},
					},
				},
			},
		},
	}

	text, err := DocumentToPlainText(doc)
	if err != nil {
		t.Fatalf("DocumentToPlainText returned error: %v", err)
	}

	if !strings.HasPrefix(text, "Notes\n\n") {
		t.Errorf("Expected title first, got: %q", text)
	}
	if strings.Contains(text, "#") || strings.Contains(text, "**") {
		t.Errorf("Plain text must not contain markdown markers, got: %q", text)
	}
	if !strings.Contains(text, "Heading") || !strings.Contains(text, "styled") {
		t.Errorf("Expected all text content, got: %q", text)
	}
}

func tabbedDocument() *docs.Document {
	return &docs.Document{
		Title: "Project Plan",
		Tabs: []*docs.Tab{
			{
				TabProperties: &docs.TabProperties{Title: "Overview"},
				DocumentTab: &docs.DocumentTab{
					Body: &docs.Body{
						Content: []*docs.StructuralElement{
							paragraphWithText("Summary text\n"),
						},
					},
				},
				ChildTabs: []*docs.Tab{
					{
						TabProperties: &docs.TabProperties{Title: "Milestones"},
						DocumentTab: &docs.DocumentTab{
							Body: &docs.Body{
								Content: []*docs.StructuralElement{
									paragraphWithText("Q1 launch\n"),
								},
							},
						},
					},
				},
			},
			{
				DocumentTab: &docs.DocumentTab{
					Body: &docs.Body{
						Content: []*docs.StructuralElement{
							paragraphWithText("Appendix text\n"),
						},
					},
				},
			},
		},
	}
}

func TestDocumentToMarkdown_Tabs(t *testing.T) {
	md, err := DocumentToMarkdown(tabbedDocument())
	if err != nil {
		t.Fatalf("DocumentToMarkdown returned error: %v", err)
	}

	if !strings.Contains(md, "## Overview\n") {
		t.Errorf("Expected tab title as H2, got: %q", md)
	}
	if !strings.Contains(md, "### Milestones\n") {
		t.Errorf("Expected child tab title as H3, got: %q", md)
	}
	if !strings.Contains(md, "## Tab 2\n") {
		t.Errorf("Expected fallback title for untitled tab, got: %q", md)
	}
	for _, want := range []string{"Summary text", "Q1 launch", "Appendix text"} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected %q in output, got: %q", want, md)
		}
	}
}

func TestDocumentToPlainText_Tabs(t *testing.T) {
	text, err := DocumentToPlainText(tabbedDocument())
	if err != nil {
		t.Fatalf("DocumentToPlainText returned error: %v", err)
	}

	if strings.Contains(text, "#") {
		t.Errorf("Plain text must not contain markdown markers, got: %q", text)
	}
	for _, want := range []string{"Overview", "Milestones", "Summary text", "Q1 launch", "Appendix text"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output, got: %q", want, text)
		}
	}
}

func TestDocumentToMarkdown_EmptyParagraphSkipped(t *testing.T) {
	doc := &docs.Document{
		Body: &docs.Body{
			Content: []*docs.StructuralElement{
				paragraphWithText("\n"),
				paragraphWithText("real content\n"),
			},
		},
	}

	md, err := DocumentToMarkdown(doc)
	if err != nil {
		t.Fatalf("DocumentToMarkdown returned error: %v", err)
	}
	if strings.HasPrefix(md, "\n") {
		t.Errorf("Expected empty paragraph to be skipped, got: %q", md)
	}
	if !strings.Contains(md, "real content") {
		t.Errorf("Expected real content, got: %q", md)
	}
}
