// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"sort"
	"strings"
	"sync"
)

// defaultDocument is the document used when no resolver is injected.
var defaultDocument = NewDocument()

// Document is a flat element tree that resolves selectors to elements.
//
// Elements are registered under a unique id. Two selector forms are
// supported:
//
//   - "#id" matches the element registered under id
//   - "tag" matches the first registered element whose kind equals tag,
//     compared case-insensitively
//
// Document is safe for concurrent use.
//
// Example:
//
//	doc := surface.NewDocument()
//	doc.Add("stage", surface.NewImageSurface(640, 480))
//	doc.Add("hud", surface.NewBlock("div"))
//
//	el, ok := doc.Query("#stage")
type Document struct {
	mu    sync.RWMutex
	byID  map[string]Element
	order []string
}

// NewDocument creates an empty document.
// Most code should use the default document via Add and Query.
func NewDocument() *Document {
	return &Document{
		byID: make(map[string]Element),
	}
}

// DefaultDocument returns the package-level document.
func DefaultDocument() *Document {
	return defaultDocument
}

// Add registers el under id in the default document.
func Add(id string, el Element) {
	defaultDocument.Add(id, el)
}

// Remove deletes id from the default document.
func Remove(id string) {
	defaultDocument.Remove(id)
}

// Query resolves selector against the default document.
func Query(selector string) (Element, bool) {
	return defaultDocument.Query(selector)
}

// Add registers el under id.
// Adding an id that already exists replaces the element but keeps its
// original registration order. A nil element, including a typed nil
// pointer, is ignored.
func (d *Document) Add(id string, el Element) {
	if IsNil(el) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.byID == nil {
		d.byID = make(map[string]Element)
	}
	if _, exists := d.byID[id]; !exists {
		d.order = append(d.order, id)
	}
	d.byID[id] = el
	Logger().Debug("surface: element added", "id", id, "kind", el.Kind())
}

// Remove deletes the element registered under id.
func (d *Document) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.byID[id]; !exists {
		return
	}
	delete(d.byID, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Query returns the element matching selector.
func (d *Document) Query(selector string) (Element, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if id, ok := strings.CutPrefix(selector, "#"); ok {
		el, found := d.byID[id]
		return el, found
	}

	kind := normalizeKind(selector)
	for _, id := range d.order {
		if el := d.byID[id]; el.Kind() == kind {
			return el, true
		}
	}
	return nil, false
}

// IDs returns all registered ids sorted alphabetically.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, len(d.order))
	copy(ids, d.order)
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered elements.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.byID)
}

func normalizeKind(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}
