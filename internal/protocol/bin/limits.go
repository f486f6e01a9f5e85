package bin

// Limits constrains decode memory use.
type Limits struct {
	// MaxBlobBytes bounds one bytes/string payload.
	MaxBlobBytes int
	// MaxVectorLen bounds the element count of one vector.
	MaxVectorLen int
	// MaxUnpackedBytes bounds the inflated size of a gzip_packed object.
	MaxUnpackedBytes int
}

// MaxBlobLen is the largest payload the 3-byte length prefix can carry.
const MaxBlobLen = 1<<24 - 1

func DefaultLimits() Limits {
	return Limits{
		MaxBlobBytes:     MaxBlobLen,
		MaxVectorLen:     1 << 20,
		MaxUnpackedBytes: 16 * 1024 * 1024,
	}
}
