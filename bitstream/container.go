// SPDX-License-Identifier: EPL-2.0

package bitstream

// Container selects how the byte stream is framed.
type Container int

const (
	// ContainerUnknown detects the framing from the first byte.
	ContainerUnknown Container = iota
	ContainerNative
	ContainerOgg
)

// Valid reports whether c names a known container.
func (c Container) Valid() bool {
	return c >= ContainerUnknown && c <= ContainerOgg
}

func (c Container) String() string {
	switch c {
	case ContainerUnknown:
		return "unknown"
	case ContainerNative:
		return "native"
	case ContainerOgg:
		return "ogg"
	}
	return "invalid"
}

// State is the parser's position in the stream grammar.
type State int

const (
	StateOggHeader State = iota
	StateStreamMarkerOrFrame
	StateStreamMarker
	StateMetadataOrFrame
	StateMetadata
	StateFrame
)

func (s State) String() string {
	switch s {
	case StateOggHeader:
		return "ogg header"
	case StateStreamMarkerOrFrame:
		return "stream marker or frame"
	case StateStreamMarker:
		return "stream marker"
	case StateMetadataOrFrame:
		return "metadata or frame"
	case StateMetadata:
		return "metadata"
	case StateFrame:
		return "frame"
	}
	return "invalid"
}
