package tl

import "github.com/danmuck/tlwire/internal/protocol/bin"

// Hand-written constructors shaped like generated code.

type testPeer interface {
	Object
	isTestPeer()
}

type testPeerEmpty struct{}

func (*testPeerEmpty) TLTag() uint32                { return 0x7f3b18ea }
func (*testPeerEmpty) TLName() string               { return "inputPeerEmpty" }
func (*testPeerEmpty) isTestPeer()                  {}
func (*testPeerEmpty) EncodeBare(*bin.Buffer) error { return nil }
func (*testPeerEmpty) DecodeBare(*bin.Cursor) error { return nil }
func (v *testPeerEmpty) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return nil
}

// testPeerSelf is only known to registries extended with selfConstructors.
type testPeerSelf struct{}

func (*testPeerSelf) TLTag() uint32                { return 0x7da07ec9 }
func (*testPeerSelf) TLName() string               { return "inputPeerSelf" }
func (*testPeerSelf) isTestPeer()                  {}
func (*testPeerSelf) EncodeBare(*bin.Buffer) error { return nil }
func (*testPeerSelf) DecodeBare(*bin.Cursor) error { return nil }
func (v *testPeerSelf) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return nil
}

var selfConstructors = []Constructor{
	{Tag: 0x7da07ec9, Name: "inputPeerSelf", Base: "InputPeer", Decode: Bare[testPeerSelf]()},
}

type testPeerUser struct {
	UserID     int32
	AccessHash int64
}

func (*testPeerUser) TLTag() uint32  { return 0x7b8e7de6 }
func (*testPeerUser) TLName() string { return "inputPeerUser" }
func (*testPeerUser) isTestPeer()    {}

func (v *testPeerUser) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return v.EncodeBare(b)
}

func (v *testPeerUser) EncodeBare(b *bin.Buffer) error {
	b.PutInt32(v.UserID)
	b.PutInt64(v.AccessHash)
	return nil
}

func (v *testPeerUser) DecodeBare(c *bin.Cursor) (err error) {
	if v.UserID, err = c.Int32(); err != nil {
		return err
	}
	if v.AccessHash, err = c.Int64(); err != nil {
		return err
	}
	return nil
}

type testNote struct {
	Title string
	Peers []testPeer
	Tags  []int64
}

func (*testNote) TLTag() uint32  { return 0x5a0b1c2d }
func (*testNote) TLName() string { return "note" }

func (v *testNote) Encode(b *bin.Buffer) error {
	b.PutTag(v.TLTag())
	return v.EncodeBare(b)
}

func (v *testNote) EncodeBare(b *bin.Buffer) error {
	if err := b.PutString(v.Title); err != nil {
		return err
	}
	if err := EncodeVector(b, v.Peers, PutObject[testPeer]); err != nil {
		return err
	}
	return EncodeVector(b, v.Tags, PutLong)
}

func (v *testNote) DecodeBare(c *bin.Cursor) (err error) {
	if v.Title, err = c.String(); err != nil {
		return err
	}
	if v.Peers, err = DecodeVector(c, ReaderOf[testPeer](testRegistry, "InputPeer")); err != nil {
		return err
	}
	if v.Tags, err = DecodeVector(c, (*bin.Cursor).Int64); err != nil {
		return err
	}
	return nil
}

var testRegistry *Registry

func init() {
	testRegistry = MustRegistry(1, []Constructor{
		{Tag: 0x7f3b18ea, Name: "inputPeerEmpty", Base: "InputPeer", Decode: Bare[testPeerEmpty]()},
		{Tag: 0x7b8e7de6, Name: "inputPeerUser", Base: "InputPeer", Decode: Bare[testPeerUser]()},
		{Tag: 0x5a0b1c2d, Name: "note", Base: "Note", Decode: Bare[testNote]()},
	})
}
