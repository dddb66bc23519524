// SPDX-License-Identifier: EPL-2.0

// Package flactest builds FLAC streams for tests: metadata blocks, frames
// with every subframe kind, Ogg encapsulation, and a scripted fake parser.
package flactest
