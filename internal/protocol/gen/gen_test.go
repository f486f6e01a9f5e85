package gen

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/danmuck/tlwire/internal/protocol/schema"
	"github.com/danmuck/tlwire/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const genSchema = `
// LAYER 3
inputPeerEmpty#7f3b18ea = InputPeer;
inputPeerUser#7b8e7de6 user_id:long access_hash:long = InputPeer;
fileLocation#53d69076 dc_id:int volume_id:long local_id:int = FileLocation;
user#2e13f4c3 flags:# self:flags.10?true id:long
    first_name:flags.1?string photo:flags.5?fileLocation
    peer:flags.2?InputPeer = User;
contacts.found#1aa1f784 results:Vector<InputPeer> users:Vector<User> ids:Vector<long> = contacts.Found;
`

func parseGen(t *testing.T, src string) *schema.Schema {
	t.Helper()
	s, err := schema.ParseString(src)
	require.NoError(t, err)
	return s
}

func TestGenerateProducesValidGo(t *testing.T) {
	testlog.Start(t)
	out, err := Generate(parseGen(t, genSchema), Options{Package: "types", Source: "gen.tl"})
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "types_gen.go", out, parser.AllErrors)
	require.NoError(t, err)

	src := string(out)
	require.True(t, strings.HasPrefix(src, "// Code generated by tlctl gen. DO NOT EDIT."))
	require.Contains(t, src, "// Source: gen.tl")
	require.Contains(t, src, "package types")
	require.Contains(t, src, "const Layer = 3")
	require.Contains(t, src, "type InputPeerClass interface")
	require.Contains(t, src, "func DecodeInputPeer(c *bin.Cursor) (InputPeerClass, error)")
	require.Contains(t, src, "const InputPeerUserTag uint32 = 0x7b8e7de6")
	require.Contains(t, src, `func (*ContactsFound) TLName() string { return "contacts.found" }`)
	require.Contains(t, src, "tl.EncodeVector(b, v.Results, tl.PutObject[InputPeerClass])")
	require.Contains(t, src, "tl.DecodeVector(c, (*bin.Cursor).Int64)")
	require.Contains(t, src, "Decode: tl.Bare[User]()")
}

func TestGenerateFlagsFields(t *testing.T) {
	testlog.Start(t)
	out, err := Generate(parseGen(t, genSchema), Options{Package: "types"})
	require.NoError(t, err)
	src := string(out)

	require.Contains(t, src, "Self      bool")
	require.Contains(t, src, "FirstName tl.Opt[string]")
	require.Contains(t, src, "Photo     tl.Opt[FileLocation]")
	require.Contains(t, src, "flags := tl.FlagIf(v.Self, 10) | v.FirstName.Flag(1) | v.Photo.Flag(5) | v.Peer.Flag(2)")
	require.Contains(t, src, "v.Self = tl.Has(flags, 10)")
	require.Contains(t, src, "if err := v.Photo.Value.EncodeBare(b); err != nil")
	require.NotContains(t, src, "// Source:")
}

func TestGenerateResetsAndRegistry(t *testing.T) {
	testlog.Start(t)
	out, err := Generate(parseGen(t, genSchema), Options{Package: "types"})
	require.NoError(t, err)
	src := string(out)

	require.Contains(t, src, "type InputPeerEmpty struct{}")
	require.Contains(t, src, "func (v *User) DecodeBare(c *bin.Cursor) (err error) {\n\t*v = User{}\n")
	require.NotContains(t, src, "*v = InputPeerEmpty{}")
	require.Contains(t, src, "registryOnce.Do(func() {")
	require.Contains(t, src, `return tl.DecodeAs[InputPeerClass](Registry(), c, "InputPeer")`)
	require.NotContains(t, src, "func init()")
}

func TestGenerateSharedFlagBitCheck(t *testing.T) {
	testlog.Start(t)
	s := parseGen(t, "stream#10 flags:# channel:flags.0?int quality:flags.0?int live:flags.0?true hd:flags.1?true = Stream;")
	out, err := Generate(s, Options{Package: "types"})
	require.NoError(t, err)
	src := string(out)

	require.Contains(t, src, "if v.Channel.Set != v.Quality.Set || v.Channel.Set != v.Live {")
	require.Contains(t, src, `return &bin.EncodeError{Op: "stream", Err: tl.ErrFlagConflict}`)
	require.NotContains(t, src, "v.Hd !=")
}

func TestGeneratedTypesAreCurrent(t *testing.T) {
	testlog.Start(t)
	s, err := schema.ParseFile("../types/schema.tl")
	require.NoError(t, err)
	out, err := Generate(s, Options{Package: "types", Source: "schema.tl"})
	require.NoError(t, err)

	committed, err := os.ReadFile("../types/types_gen.go")
	require.NoError(t, err)
	require.Equal(t, string(committed), string(out), "types_gen.go is stale, regenerate it with tlctl gen")
}

func TestGenerateIsDeterministic(t *testing.T) {
	testlog.Start(t)
	s := parseGen(t, genSchema)
	first, err := Generate(s, Options{Package: "types"})
	require.NoError(t, err)
	second, err := Generate(s, Options{Package: "types"})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerateLayerOverride(t *testing.T) {
	testlog.Start(t)
	s := parseGen(t, genSchema)
	out, err := Generate(s, Options{Package: "types", Layer: 9})
	require.NoError(t, err)
	require.Contains(t, string(out), "const Layer = 9")
	require.Equal(t, 3, s.Layer)
}

func TestGenerateRejects(t *testing.T) {
	testlog.Start(t)

	_, err := Generate(parseGen(t, genSchema), Options{})
	require.Error(t, err)

	nested := parseGen(t, `matrix#11223344 rows:Vector<Vector<int>> = Matrix;`)
	_, err = Generate(nested, Options{Package: "types"})
	require.ErrorContains(t, err, "nested vectors")

	dup := parseGen(t, "a#11111111 = A;\nb#11111111 = B;")
	_, err = Generate(dup, Options{Package: "types"})
	var verr schema.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "b", verr.Name)
}

func TestGoName(t *testing.T) {
	cases := map[string]string{
		"inputPeerUser":  "InputPeerUser",
		"user_id":        "UserID",
		"contacts.found": "ContactsFound",
		"p_q_inner_data": "PQInnerData",
		"dc_id":          "DCID",
		"access_hash":    "AccessHash",
		"photo_big":      "PhotoBig",
		"server_nonce":   "ServerNonce",
	}
	for in, want := range cases {
		require.Equal(t, want, goName(in), in)
	}
	require.Equal(t, "firstName", localName("first_name"))
}
