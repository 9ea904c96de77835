// Package outlined provides a text element that paints its text as filled
// glyph outlines with a stroked border.
//
// # Overview
//
// An OutlinedText holds a Style (text, font family, size, weight, slant,
// fill and stroke brushes, stroke thickness and the maximum layout box).
// Every effective style change lays the text out again through a Layouter,
// converts the glyphs to a single Path, reports the measured size to the
// Host and asks it for a redraw. Paint draws the cached Path on a Surface
// with one call: the Fill brush for the interiors and a Pen of the Stroke
// brush and StrokeThickness for the borders.
//
// # Quick Start
//
//	el := outlined.New(outlined.WithHost(window))
//	el.SetFontFamily("Go")
//	el.SetStrokeThickness(2)
//	el.AddChildText("Hello")
//
//	c := outlined.NewCanvas(int(el.MinWidth()), int(el.MinHeight()))
//	el.Paint(c)
//	c.SavePNG("hello.png")
//
// # Surfaces
//
// Canvas rasterizes into an image.RGBA. The recording package captures
// paints as commands that can be replayed onto PNG or SVG backends.
//
// # Coordinate System
//
// Layout coordinates have the origin at the top left of the layout box,
// X growing right and Y growing down. Glyph outlines are placed on their
// baselines inside that box.
package outlined
