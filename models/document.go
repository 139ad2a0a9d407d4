package models

// The types below carry the content contract handed to the external
// document encoder: which runs are bold or italic, cell spans and
// nominal widths, row and column counts. The binary container format
// itself is produced elsewhere; visual fidelity depends only on this
// structure being preserved exactly.

// TextRun is a span of text with its emphasis flags.
type TextRun struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Paragraph is an ordered sequence of runs rendered on one line block.
type Paragraph struct {
	Runs []TextRun `json:"runs"`
}

// TableCell is one cell of a document table. RowSpan/ColSpan of zero
// mean one. Widths are hints: WidthPct in percent of the table width,
// WidthTwips in twentieths of a point, whichever the layout fixed.
type TableCell struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	RowSpan    int         `json:"rowSpan,omitempty"`
	ColSpan    int         `json:"colSpan,omitempty"`
	WidthPct   int         `json:"widthPct,omitempty"`
	WidthTwips int         `json:"widthTwips,omitempty"`
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell `json:"cells"`
}

// DocTable is a document table with its rows in render order.
type DocTable struct {
	Rows []TableRow `json:"rows"`
}

// Block is one top-level document element: either a paragraph or a
// table, never both.
type Block struct {
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Table     *DocTable  `json:"table,omitempty"`
}
