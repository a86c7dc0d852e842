// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package multicanvas composites named drawing layers onto a single 2D
// surface.
//
// # Overview
//
// A Canvas owns one drawable surface and an ordered list of layers. Each
// Layer pairs a unique id with a DrawFunc. Render clears the surface and
// calls every DrawFunc in order with the surface and its gg drawing
// context, so later layers draw over earlier ones:
//
//	surface.Add("stage", surface.NewImageSurface(640, 480))
//
//	mc, err := multicanvas.New(multicanvas.Selector("#stage"))
//	if err != nil {
//	    return err
//	}
//
//	err = mc.Push(
//	    multicanvas.NewLayer("background", paint.Fill(gg.Hex("#1e1e2e"))),
//	    multicanvas.NewLayer("player", drawPlayer),
//	    multicanvas.NewLayer("hud", drawHUD),
//	)
//
//	// Once per frame, from the host loop:
//	if err := mc.Render(); err != nil {
//	    return err
//	}
//
// # Layer Management
//
// Push appends layers; UpdateLayer swaps a layer in place (renaming is
// allowed); RemoveLayer deletes one while keeping the order of the rest.
// Layer, At and FindIndex look layers up by id or position. Mutations are
// all-or-nothing: a rejected call leaves the canvas unchanged.
//
// # Surfaces
//
// The target of New is either a Selector resolved through a Resolver
// (surface.Document by default) or a Ref holding an element. Only canvas
// elements implementing surface.Surface are accepted. Width and height
// are passed through to the surface.
//
// # Rendering Model
//
// There is no scene graph, dirty tracking or scheduling: every Render is
// a full redraw. Layers share drawing state unless the canvas is created
// with WithStateIsolation. A panic in a DrawFunc propagates out of Render.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use.
package multicanvas
