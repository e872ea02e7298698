package carousel

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenPrefix starts every token addressed to a carousel
const TokenPrefix = "Carousel"

// Event tags as they appear on the wire
const (
	TagTouchStart = "TouchStart"
	TagTouchMove  = "TouchMove"
	TagTouchEnd   = "TouchEnd"
	TagMouseDown  = "MouseDown"
	TagMouseMove  = "MouseMove"
	TagMouseUp    = "MouseUp"
	TagMouseLeave = "MouseLeave"
	TagPrevSlide  = "PrevSlide"
	TagNextSlide  = "NextSlide"
	TagGoToSlide  = "GoToSlide"
)

// UnknownEventError is returned by Decode for tokens outside the protocol grammar.
// Token holds the unrecognized text: the whole token when the prefix is wrong,
// otherwise only the event part after the carousel id.
type UnknownEventError struct {
	Token string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown carousel event: %q", e.Token)
}

// Encode renders e as a token addressed to the carousel id.
// Coordinates are not part of the token; send Payload(e) alongside it.
func Encode(id string, e Event) string {
	return TokenPrefix + Delimiter + id + Delimiter + eventTag(e)
}

// Payload renders the coordinates of a pointer or touch event as "x,y".
// Other events carry no payload and return nil.
func Payload(e Event) []byte {
	var x, y float64
	switch e := e.(type) {
	case TouchStart:
		x, y = e.X, e.Y
	case TouchMove:
		x, y = e.X, e.Y
	case TouchEnd:
		x, y = e.X, e.Y
	case MouseDown:
		x, y = e.X, e.Y
	case MouseMove:
		x, y = e.X, e.Y
	case MouseUp:
		x, y = e.X, e.Y
	default:
		return nil
	}
	return []byte(formatNumber(x) + "," + formatNumber(y))
}

func eventTag(e Event) string {
	switch e := e.(type) {
	case TouchStart:
		return TagTouchStart
	case TouchMove:
		return TagTouchMove
	case TouchEnd:
		return TagTouchEnd
	case MouseDown:
		return TagMouseDown
	case MouseMove:
		return TagMouseMove
	case MouseUp:
		return TagMouseUp
	case MouseLeave:
		return TagMouseLeave
	case PrevSlide:
		return TagPrevSlide
	case NextSlide:
		return TagNextSlide
	case GoToSlide:
		return TagGoToSlide + Delimiter + strconv.Itoa(e.Index)
	default:
		return ""
	}
}

// Decode parses a token and its coordinate payload into the addressed carousel id and event.
func Decode(token string, payload []byte) (string, Event, error) {
	prefix, rest, ok := strings.Cut(token, Delimiter)
	if !ok || prefix != TokenPrefix {
		return "", nil, &UnknownEventError{Token: token}
	}
	id, eventStr, ok := strings.Cut(rest, Delimiter)
	if !ok {
		return "", nil, &UnknownEventError{Token: token}
	}

	switch eventStr {
	case TagTouchStart:
		x, y := ParseCoords(payload)
		return id, TouchStart{X: x, Y: y}, nil
	case TagTouchMove:
		x, y := ParseCoords(payload)
		return id, TouchMove{X: x, Y: y}, nil
	case TagTouchEnd:
		x, y := ParseCoords(payload)
		return id, TouchEnd{X: x, Y: y}, nil
	case TagMouseDown:
		x, y := ParseCoords(payload)
		return id, MouseDown{X: x, Y: y}, nil
	case TagMouseMove:
		x, y := ParseCoords(payload)
		return id, MouseMove{X: x, Y: y}, nil
	case TagMouseUp:
		x, y := ParseCoords(payload)
		return id, MouseUp{X: x, Y: y}, nil
	case TagMouseLeave:
		return id, MouseLeave{}, nil
	case TagPrevSlide:
		return id, PrevSlide{}, nil
	case TagNextSlide:
		return id, NextSlide{}, nil
	}

	// GoToSlide|<n>. Failures here report eventStr, not the whole token.
	tag, arg, ok := strings.Cut(eventStr, Delimiter)
	if !ok || tag != TagGoToSlide {
		return "", nil, &UnknownEventError{Token: eventStr}
	}
	index, err := strconv.ParseUint(arg, 10, strconv.IntSize-1)
	if err != nil {
		return "", nil, &UnknownEventError{Token: eventStr}
	}
	return id, GoToSlide{Index: int(index)}, nil
}

// ParseCoords reads "x,y" from payload. It never fails: invalid UTF-8 is replaced,
// and a missing or malformed coordinate is 0. Fields after the second are ignored.
func ParseCoords(payload []byte) (x, y float64) {
	fields := strings.Split(strings.ToValidUTF8(string(payload), "�"), ",")
	x = parseCoord(fields, 0)
	y = parseCoord(fields, 1)
	return x, y
}

func parseCoord(fields []string, i int) float64 {
	if i >= len(fields) {
		return 0
	}
	v, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		return 0
	}
	return v
}
