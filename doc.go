// Package boxframe renders rectangular bordered boxes of text for terminals:
// configurable border glyph sets with per-side visibility and corner
// overrides, embedded titles, wrapped/aligned/padded content, foreground and
// background styling, horizontal tiling, and side-by-side merging of
// rendered boxes. Output is either flowed multi-line text or a stream of
// cursor-positioned fragments for absolute placement.
package boxframe
