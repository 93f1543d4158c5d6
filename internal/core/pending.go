package core

import "sync"

// PendingDocument is an HTML document to be synthesized for a non-HTML entry.
type PendingDocument struct {
	TemplatePath   string
	EntrySpecifier string
}

// PendingDocuments is written when entries are resolved and read when their
// content is loaded. Entries are never removed.
type PendingDocuments struct {
	mu   sync.RWMutex
	docs map[string]PendingDocument
}

func NewPendingDocuments() *PendingDocuments {
	return &PendingDocuments{docs: make(map[string]PendingDocument)}
}

func (p *PendingDocuments) Record(id string, doc PendingDocument) {
	p.mu.Lock()
	p.docs[id] = doc
	p.mu.Unlock()
}

func (p *PendingDocuments) Lookup(id string) (PendingDocument, bool) {
	p.mu.RLock()
	doc, ok := p.docs[id]
	p.mu.RUnlock()
	return doc, ok
}

func (p *PendingDocuments) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.docs)
}
