// Package icons defines the enumerated icon tags used by skill cells and
// social links.
//
// Every tag maps to exactly one Lucide glyph name. Pages reference glyphs
// through symbol ids in a static SVG sprite, so this package never carries
// markup of its own.
package icons
