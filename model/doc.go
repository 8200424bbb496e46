// Package model provides the typed document representation shared by the
// normalization, classification and breaker stages.
//
// A [Document] owns [Page] values in order. Each page holds [Item] values:
// a [Container] (a text block, written as <div>), a [Figure] stub standing
// in for a non-text block, or a [Raw] node passed through untouched.
//
//	Document
//	└── Page            id="page1"
//	    ├── Container   id="page1_div1"
//	    │   └── Paragraph   id="page1_div1_p1"
//	    │       └── Line    id="page1_d1_p1_l1"
//	    └── Figure      type="Picture"
//
// Every node keeps the attributes it was loaded with, in source order.
// Values the pipeline computes (identifiers, detected page numbers and
// headers, line types) are kept in typed fields and merged into the
// attributes only when a node is rendered, see [Page.Attributes].
//
// # Warnings
//
// Classification decisions the heuristics are unsure of are reported as
// [Warning] values. They never change the tree.
//
// # Errors
//
// Structurally malformed input (a block without blockType, a line without
// a numeric bottom coordinate) is reported as a [*MalformedInputError]
// naming the path of the offending node.
package model
