// Package overlay is a small immediate-mode debug UI. Widgets are declared
// every frame between Begin and End; End rasterizes them into an RGBA image
// that the renderer uploads and draws on top of the scene.
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout metrics, in pixels
const (
	RowHeight = 18
	Padding   = 8
)

var face = basicfont.Face7x13

// Style controls panel colors and minimum width.
type Style struct {
	Background color.RGBA
	Text       color.RGBA
	Heading    color.RGBA
	Accent     color.RGBA
	MinWidth   int
}

// PanelStyle is an opaque side panel
var PanelStyle = Style{
	Background: color.RGBA{24, 24, 28, 230},
	Text:       color.RGBA{210, 210, 210, 255},
	Heading:    color.RGBA{255, 255, 255, 255},
	Accent:     color.RGBA{110, 150, 220, 255},
	MinWidth:   240,
}

// HUDStyle draws text with no background
var HUDStyle = Style{
	Text:    color.RGBA{255, 255, 255, 255},
	Heading: color.RGBA{255, 255, 255, 255},
	Accent:  color.RGBA{255, 255, 255, 255},
}

type widgetKind int

const (
	kindHeading widgetKind = iota
	kindLabel
	kindSeparator
	kindCheckbox
	kindButton
)

type widget struct {
	kind    widgetKind
	text    string
	checked bool
	hovered bool
}

// Frame is the rasterized output of one panel pass.
type Frame struct {
	Image  *image.RGBA
	Origin image.Point
}

// Rect returns the frame's screen rectangle.
func (f Frame) Rect() image.Rectangle {
	return f.Image.Bounds().Add(f.Origin)
}

// Panel collects widgets for one frame and resolves clicks against them.
type Panel struct {
	style   Style
	origin  image.Point
	widgets []widget
	clicks  []image.Point
	cursor  image.Point
	width   int

	// width of the last rasterized frame, which is what the pointer saw
	lastWidth int
}

// NewPanel creates a panel with the given style.
func NewPanel(style Style) *Panel {
	return &Panel{style: style}
}

// Click queues a pointer click in screen coordinates. It is consumed by the
// first interactive widget under it during the next frame.
func (p *Panel) Click(x, y int) {
	p.clicks = append(p.clicks, image.Pt(x, y))
}

// MouseMove records the pointer position for hover highlighting.
func (p *Panel) MouseMove(x, y int) {
	p.cursor = image.Pt(x, y)
}

// Begin starts a frame with the panel's top-left corner at origin.
func (p *Panel) Begin(origin image.Point) {
	p.origin = origin
	p.widgets = p.widgets[:0]
	p.width = p.style.MinWidth
}

// rowRect is the screen rectangle that row w will occupy when added next. It
// spans the full panel width: the widest of the previous frame, the rows so
// far and w itself.
func (p *Panel) rowRect(w widget) image.Rectangle {
	width := max(p.lastWidth, p.width, rowWidth(w))
	y := p.origin.Y + Padding + len(p.widgets)*RowHeight
	return image.Rect(p.origin.X, y, p.origin.X+width, y+RowHeight)
}

func rowWidth(w widget) int {
	return font.MeasureString(face, w.text).Ceil() + 2*Padding + checkboxIndent(w.kind)
}

func (p *Panel) add(w widget) {
	p.width = max(p.width, rowWidth(w))
	p.widgets = append(p.widgets, w)
}

// takeClick consumes a queued click inside r
func (p *Panel) takeClick(r image.Rectangle) bool {
	for i, c := range p.clicks {
		if c.In(r) {
			p.clicks = append(p.clicks[:i], p.clicks[i+1:]...)
			return true
		}
	}
	return false
}

// Heading adds a title row.
func (p *Panel) Heading(text string) {
	p.add(widget{kind: kindHeading, text: text})
}

// Label adds a plain text row.
func (p *Panel) Label(text string) {
	p.add(widget{kind: kindLabel, text: text})
}

// Separator adds a horizontal rule.
func (p *Panel) Separator() {
	p.add(widget{kind: kindSeparator})
}

// Checkbox adds a toggle bound to value. It returns true when a click
// flipped the value this frame.
func (p *Panel) Checkbox(text string, value *bool) bool {
	w := widget{kind: kindCheckbox, text: text}
	r := p.rowRect(w)
	changed := p.takeClick(r)
	if changed {
		*value = !*value
	}
	w.checked = *value
	w.hovered = p.cursor.In(r)
	p.add(w)
	return changed
}

// Button adds a clickable row. It returns true when clicked this frame.
func (p *Panel) Button(text string) bool {
	w := widget{kind: kindButton, text: text}
	r := p.rowRect(w)
	clicked := p.takeClick(r)
	w.hovered = p.cursor.In(r)
	p.add(w)
	return clicked
}

// End rasterizes the frame. Clicks that hit no widget are dropped.
func (p *Panel) End() Frame {
	p.clicks = p.clicks[:0]
	p.lastWidth = p.width

	height := 2*Padding + len(p.widgets)*RowHeight
	img := image.NewRGBA(image.Rect(0, 0, p.width, height))
	if p.style.Background.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(p.style.Background), image.Point{}, draw.Src)
	}

	for i, w := range p.widgets {
		top := Padding + i*RowHeight
		p.drawWidget(img, w, top)
	}

	return Frame{Image: img, Origin: p.origin}
}

func checkboxIndent(k widgetKind) int {
	if k == kindCheckbox {
		return font.MeasureString(face, "[x] ").Ceil()
	}
	return 0
}

func (p *Panel) drawWidget(img *image.RGBA, w widget, top int) {
	baseline := top + (RowHeight+face.Ascent-face.Descent)/2
	row := image.Rect(0, top, img.Bounds().Dx(), top+RowHeight)

	switch w.kind {
	case kindHeading:
		drawText(img, w.text, Padding, baseline, p.style.Heading)
	case kindLabel:
		drawText(img, w.text, Padding, baseline, p.style.Text)
	case kindSeparator:
		mid := top + RowHeight/2
		line := image.Rect(Padding, mid, img.Bounds().Dx()-Padding, mid+1)
		draw.Draw(img, line, image.NewUniform(p.style.Text), image.Point{}, draw.Over)
	case kindCheckbox:
		box := "[ ] "
		if w.checked {
			box = "[x] "
		}
		if w.hovered {
			fillRow(img, row, p.style.Accent)
		}
		drawText(img, box+w.text, Padding, baseline, p.style.Text)
	case kindButton:
		inner := row.Inset(2)
		fillRow(img, inner, p.style.Accent)
		if !w.hovered {
			fillRow(img, inner.Inset(1), p.style.Background)
		}
		drawText(img, w.text, Padding, baseline, p.style.Heading)
	}
}

func fillRow(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img *image.RGBA, text string, x, baseline int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
