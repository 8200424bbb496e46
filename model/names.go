package model

import "github.com/tsawler/ocrsift/xmltree"

// Attr and Attrs are the ordered, case-insensitive attribute lists of the
// underlying XML tree.
type (
	Attr  = xmltree.Attr
	Attrs = xmltree.Attrs
)

// Element names of the normalized schema.
const (
	ElemDocument  = "document"
	ElemPage      = "page"
	ElemContainer = "div"
	ElemParagraph = "p"
	ElemLine      = "line"
	ElemFigure    = "figure"
	ElemPageBreak = "pb"
	ElemLineBreak = "lb"
)

// Element names of the FineReader source schema.
const (
	SrcBlock      = "block"
	SrcRegion     = "region"
	SrcText       = "text"
	SrcParagraph  = "par"
	SrcLine       = "line"
	SrcFormatting = "formatting"
	SrcCharParams = "charParams"
)

// Attribute names. Lookups ignore case, so "blockType" in a FineReader
// export matches AttrBlockType.
const (
	AttrID          = "id"
	AttrType        = "type"
	AttrWidth       = "width"
	AttrHeight      = "height"
	AttrBottom      = "b"
	AttrLineSpacing = "linespacing"
	AttrPageNumber  = "pagenb"
	AttrPageHeader  = "pageheader"
	AttrBlockType   = "blocktype"
	AttrBlockName   = "blockname"
)

// BlockTypeText is the blockType value of text blocks.
const BlockTypeText = "Text"
