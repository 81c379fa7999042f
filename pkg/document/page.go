package document

// Page is the unit of text extracted from one page of a source PDF. Pages
// are produced by the loaders, consumed once by MergeContext and then
// discarded.
type Page struct {
	Text   string
	Source string
	Number int
}
