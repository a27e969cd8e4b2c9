// Package raster applies linear transforms to pixel data.
//
// Images are held in a [Buffer], a flat row-major float64 slice with
// interleaved channels, so the resampling loop stays a plain index
// computation. [Resample] builds the transformed image by inverse
// mapping: every destination pixel is pulled back through the inverse
// matrix and fetched with wrap-around (modulo) indexing over the flat
// source buffer. Out-of-range coordinates wrap cyclically instead of
// clamping or filling with background; this mirrors the classic
// teaching construction and is part of the output contract.
package raster
