package geometry

// AnchorX is a horizontal anchor position.
type AnchorX uint8

// Horizontal anchors.
const (
	AnchorXLeft AnchorX = iota
	AnchorXCenter
	AnchorXRight
)

// AnchorY is a vertical anchor position.
type AnchorY uint8

// Vertical anchors.
const (
	AnchorYTop AnchorY = iota
	AnchorYCenter
	AnchorYBottom
)

// AnchorPoint names one of nine reference points of a rectangle.
type AnchorPoint uint8

// Anchor points.
const (
	AnchorTopLeft AnchorPoint = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// AnchorPointFromXY combines a horizontal and vertical anchor.
func AnchorPointFromXY(x AnchorX, y AnchorY) AnchorPoint {
	return AnchorPoint(uint8(y)*3 + uint8(x))
}

// X returns the horizontal component.
func (a AnchorPoint) X() AnchorX {
	return AnchorX(uint8(a) % 3)
}

// Y returns the vertical component.
func (a AnchorPoint) Y() AnchorY {
	return AnchorY(uint8(a) / 3)
}

// String returns the name of the anchor point.
func (a AnchorPoint) String() string {
	switch a {
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTopCenter:
		return "TopCenter"
	case AnchorTopRight:
		return "TopRight"
	case AnchorCenterLeft:
		return "CenterLeft"
	case AnchorCenter:
		return "Center"
	case AnchorCenterRight:
		return "CenterRight"
	case AnchorBottomLeft:
		return "BottomLeft"
	case AnchorBottomCenter:
		return "BottomCenter"
	case AnchorBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}
