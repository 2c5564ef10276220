package tools

import "slices"

// RemoveObject deletes the object id and returns it. Active stroke or
// text focus pointing at it is dropped.
func (e *Editor) RemoveObject(id uint64) (Object, bool) {
	i := e.index(id)
	if i < 0 {
		return nil, false
	}
	obj := e.objects[i]
	e.objects = slices.Delete(e.objects, i, i+1)
	e.forgetActive(obj)
	return obj, true
}

// PopLastObject removes the most recently stored object.
func (e *Editor) PopLastObject() (Object, bool) {
	if len(e.objects) == 0 {
		return nil, false
	}
	last := len(e.objects) - 1
	obj := e.objects[last]
	e.objects[last] = nil
	e.objects = e.objects[:last]
	e.forgetActive(obj)
	return obj, true
}

// PushObject appends obj as is. The id allocator moves past obj's id so
// later objects never collide with it.
func (e *Editor) PushObject(obj Object) {
	if obj == nil {
		return
	}
	obj = obj.clone()
	e.objects = append(e.objects, obj)
	if id := obj.ID(); id >= e.nextID {
		e.nextID = saturatingNext(id)
	}
}

// ReplaceObjects swaps the whole object list. The id allocator restarts
// after the highest id present and focus on objects that are gone is
// dropped.
func (e *Editor) ReplaceObjects(objs []Object) {
	e.objects = make([]Object, 0, len(objs))
	var highest uint64
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		e.objects = append(e.objects, obj.clone())
		highest = max(highest, obj.ID())
	}
	e.nextID = saturatingNext(highest)
	if e.activePen.ok {
		if _, ok := find[*PenStroke](e, e.activePen.id); !ok {
			e.activePen.clear()
		}
	}
	if e.activeText.ok {
		if _, ok := find[*Text](e, e.activeText.id); !ok {
			e.activeText.clear()
		}
	}
}

func (e *Editor) forgetActive(obj Object) {
	switch obj.(type) {
	case *PenStroke:
		if e.activePen.is(obj.ID()) {
			e.activePen.clear()
		}
	case *Text:
		if e.activeText.is(obj.ID()) {
			e.activeText.clear()
		}
	}
}

func saturatingNext(id uint64) uint64 {
	if id == ^uint64(0) {
		return id
	}
	return id + 1
}
