package tools

// Len is the number of stored objects.
func (e *Editor) Len() int {
	return len(e.objects)
}

// Objects returns copies of every object in insertion order.
func (e *Editor) Objects() []Object {
	out := make([]Object, len(e.objects))
	for i, obj := range e.objects {
		out[i] = obj.clone()
	}
	return out
}

// Object returns a copy of the object id.
func (e *Editor) Object(id uint64) (Object, bool) {
	i := e.index(id)
	if i < 0 {
		return nil, false
	}
	return e.objects[i].clone(), true
}

func lookup[T Object](e *Editor, id uint64) (T, bool) {
	obj, ok := find[T](e, id)
	if !ok {
		return obj, false
	}
	return obj.clone().(T), true
}

func collect[T Object](e *Editor) []T {
	var out []T
	for _, obj := range e.objects {
		if v, ok := obj.(T); ok {
			out = append(out, v.clone().(T))
		}
	}
	return out
}

func (e *Editor) Blur(id uint64) (*Blur, bool)           { return lookup[*Blur](e, id) }
func (e *Editor) PenStroke(id uint64) (*PenStroke, bool) { return lookup[*PenStroke](e, id) }
func (e *Editor) Arrow(id uint64) (*Arrow, bool)         { return lookup[*Arrow](e, id) }
func (e *Editor) Rectangle(id uint64) (*Rectangle, bool) { return lookup[*Rectangle](e, id) }
func (e *Editor) Crop(id uint64) (*Crop, bool)           { return lookup[*Crop](e, id) }
func (e *Editor) Text(id uint64) (*Text, bool)           { return lookup[*Text](e, id) }

func (e *Editor) Blurs() []*Blur           { return collect[*Blur](e) }
func (e *Editor) PenStrokes() []*PenStroke { return collect[*PenStroke](e) }
func (e *Editor) Arrows() []*Arrow         { return collect[*Arrow](e) }
func (e *Editor) Rectangles() []*Rectangle { return collect[*Rectangle](e) }
func (e *Editor) Crops() []*Crop           { return collect[*Crop](e) }
func (e *Editor) Texts() []*Text           { return collect[*Text](e) }

// ActivePenStrokeID returns the stroke currently being drawn.
func (e *Editor) ActivePenStrokeID() (uint64, bool) {
	return e.activePen.id, e.activePen.ok
}

// ActiveTextID returns the text box receiving keyboard input.
func (e *Editor) ActiveTextID() (uint64, bool) {
	return e.activeText.id, e.activeText.ok
}

// ActiveText returns a copy of the focused text box.
func (e *Editor) ActiveText() (*Text, bool) {
	if !e.activeText.ok {
		return nil, false
	}
	return e.Text(e.activeText.id)
}

// ActiveTextContent returns the content of the focused text box.
func (e *Editor) ActiveTextContent() (string, bool) {
	t, ok := e.ActiveText()
	if !ok {
		return "", false
	}
	return t.Content(), true
}
