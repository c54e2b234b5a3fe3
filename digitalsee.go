// Package digitalsee provides a navigator for a local corpus of TEI-encoded
// XML documents. It loads a directory of XML files into an in-memory library,
// filters documents by author, place, or keyword, and exposes header metadata,
// commentary and edition sections, and the original XML for download.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, http/, fs/).
package digitalsee
