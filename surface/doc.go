// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawable elements a multi-layered canvas
// renders onto, and the document that resolves them by selector.
//
// # Elements and Surfaces
//
// Every node of a Document is an Element with a kind ("CANVAS", "DIV", ...).
// Elements of kind KindCanvas that implement Surface own a gg drawing
// context and pass-through pixel dimensions:
//
//   - ImageSurface: CPU rendering into a gg pixmap, PNG export
//   - GPUSurface: gg drawing presented in a gogpu window via ggcanvas
//   - Block: plain non-drawable element
//
// # Document
//
// A Document maps ids to elements and answers "#id" and tag selectors:
//
//	surface.Add("stage", surface.NewImageSurface(800, 600))
//
//	// Later:
//	el, ok := surface.Query("#stage")
//
// The default document backs multicanvas.New when no resolver is given.
package surface
