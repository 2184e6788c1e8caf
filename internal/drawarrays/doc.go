// Package drawarrays builds interleaved vertex arrays from per-vertex
// attribute calls and dispatches them to a graphics backend.
//
// It replaces immediate-mode drawing (color, texcoord, normal, vertex
// calls between begin/end) with client-side arrays, which is the only
// drawing path OpenGL ES and core-profile contexts offer. Arrays are
// either named, built once and drawn many times through a Handle, or
// temporary, built and drawn once:
//
//	h := reg.Create()
//	b := reg.Begin(h)
//	for _, v := range verts {
//		b.AddColor(v.R, v.G, v.B, 1)
//		b.AddVertex(v.X, v.Y, v.Z)
//	}
//	b.Finish()
//	reg.Draw(h, drawarrays.TriangleFan)
//
// Every vertex occupies Stride floats: color at 0, texcoord at 4, normal
// at 6 and position at 9. Unused attributes are zero-filled and their
// channels disabled at draw time.
//
// Contract violations (a second session, attributes supplied for only
// some vertices, an unknown handle, a vertex count the topology cannot
// use) panic with *ContractError. Builds tagged release default to
// Elided validation, which skips the count and topology checks.
package drawarrays
