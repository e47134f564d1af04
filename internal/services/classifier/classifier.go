// Package classifier defines the narrow contract docshelf consumes to detect
// document types and canonical locations, plus a registry-signal
// implementation so the tool runs without an external classifier process.
//
// The pipeline only ever sees the Classifier interface; alternative
// implementations (an external service, a test stub) plug in unchanged.
package classifier

// Context carries ambient signals a classifier may weigh alongside the
// document's path and content.
type Context struct {
	AgentPersona string
}

// Classifier is the external classification contract.
//
// Detect returns the detected document type and a 0-100 confidence score;
// the type "uncertain" signals no confident match. ResolveCanonicalPath is
// only called for confidently-typed documents (confidence at or above the
// detection floor) and returns the absolute path the document should occupy.
type Classifier interface {
	Detect(path string, content []byte, ctx Context) (docType string, confidence int)
	ResolveCanonicalPath(docType, path string, content []byte) (string, error)
}
