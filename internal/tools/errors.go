package tools

// ToolError is returned by editor operations that reject their input.
// Values are comparable, so errors.Is works against the exported
// constants.
type ToolError int

const (
	ErrInvalidBlurRegion ToolError = iota + 1
	ErrInvalidArrowGeometry
	ErrInvalidRectangleGeometry
	ErrInvalidCropGeometry
	ErrEmptyPenStroke
	ErrPenStrokeNotFound
	ErrObjectNotFound
	ErrToolNotSelected
)

func (e ToolError) Error() string {
	switch e {
	case ErrInvalidBlurRegion:
		return "blur region must have a non-zero width and height"
	case ErrInvalidArrowGeometry:
		return "arrow start and end must differ"
	case ErrInvalidRectangleGeometry:
		return "rectangle must have a non-zero width and height"
	case ErrInvalidCropGeometry:
		return "crop box is empty, too small or outside the image"
	case ErrEmptyPenStroke:
		return "pen stroke has no points"
	case ErrPenStrokeNotFound:
		return "pen stroke not found"
	case ErrObjectNotFound:
		return "object not found"
	case ErrToolNotSelected:
		return "no active pen stroke"
	}
	return "unknown tool error"
}
