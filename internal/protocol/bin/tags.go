package bin

// Built-in constructor tags known to every schema layer.
const (
	TagBoolTrue   uint32 = 0x997275b5
	TagBoolFalse  uint32 = 0xbc799737
	TagVector     uint32 = 0x1cb5c415
	TagGzipPacked uint32 = 0x3072cfa1
)

// Tag size on the wire.
const TagSize = 4

// Blob length prefix layout.
const (
	shortPrefixMax = 253
	longPrefixMark = 254
)
