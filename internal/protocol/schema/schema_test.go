package schema

import (
	"errors"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

const sampleSchema = `
// LAYER 7
boolFalse#bc799737 = Bool;
boolTrue#997275b5 = Bool;
vector#1cb5c415 {t:Type} # [ t ] = Vector t;

inputPeerEmpty#7f3b18ea = InputPeer;
inputPeerUser#7b8e7de6 user_id:int access_hash:long = InputPeer;
geoPoint#2049d70c long:double lat:double = GeoPoint;
user#2e13f4c3 flags:# self:flags.10?true id:int
    first_name:flags.1?string
    peer:flags.2?InputPeer = User;
contacts.found#1aa1f784 results:Vector<InputPeer> users:Vector<User> point:geoPoint = contacts.Found;

---functions---
contacts.search#11f812d8 q:string limit:int = contacts.Found;
`

func TestParseSampleSchema(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString(sampleSchema)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Layer != 7 {
		t.Fatalf("expected layer 7, got %d", s.Layer)
	}
	if len(s.Types) != 5 || len(s.Functions) != 1 {
		t.Fatalf("expected 5 types and 1 function, got %d/%d", len(s.Types), len(s.Functions))
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	user, ok := s.Lookup("user")
	if !ok {
		t.Fatalf("user not found")
	}
	if user.Tag != 0x2e13f4c3 || !user.ExplicitTag || !user.HasFlags() {
		t.Fatalf("unexpected user definition: %+v", user)
	}
	self := user.Params[1]
	if !self.Conditional || self.FlagField != "flags" || self.FlagBit != 10 || self.Type.Kind != KindTrue {
		t.Fatalf("unexpected self param: %+v", self)
	}
	peer := user.Params[4]
	if peer.Type.Kind != KindObject || peer.Type.Name != "InputPeer" || peer.FlagBit != 2 {
		t.Fatalf("unexpected peer param: %+v", peer)
	}

	found, _ := s.Lookup("contacts.found")
	if found.Result != "contacts.Found" {
		t.Fatalf("unexpected result %q", found.Result)
	}
	results := found.Params[0].Type
	if results.Kind != KindVector || results.Elem.Kind != KindObject || results.Elem.Name != "InputPeer" {
		t.Fatalf("unexpected results type: %s", results)
	}
	if found.Params[2].Type.Kind != KindBare || found.Params[2].Type.Name != "geoPoint" {
		t.Fatalf("unexpected bare param: %+v", found.Params[2])
	}
}

func TestBaseTypesGroupsConstructorsInOrder(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString(sampleSchema)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bases := s.BaseTypes()
	if len(bases) != 4 || bases[0].Name != "InputPeer" {
		t.Fatalf("unexpected bases: %+v", bases)
	}
	if len(bases[0].Constructors) != 2 || bases[0].Constructors[1].Name != "inputPeerUser" {
		t.Fatalf("unexpected InputPeer constructors: %+v", bases[0].Constructors)
	}
}

func TestComputeTagForUntaggedDeclaration(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("point x:int y:Vector<int> = Point;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := crc32.ChecksumIEEE([]byte("point x:int y:Vector int = Point"))
	if s.Types[0].Tag != want || s.Types[0].ExplicitTag {
		t.Fatalf("expected computed tag 0x%08x, got 0x%08x", want, s.Types[0].Tag)
	}
}

func TestNormalizeDropsTagAndTerminator(t *testing.T) {
	got := Normalize("  inputPeerUser#7b8e7de6   user_id:int access_hash:long = InputPeer; ")
	if got != "inputPeerUser user_id:int access_hash:long = InputPeer" {
		t.Fatalf("unexpected normalization %q", got)
	}
}

func TestValidateRejectsUndeclaredFlagsField(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("broken#1 name:flags.0?string flags:# = Broken;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = s.Validate()
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Name != "broken" || ve.Field != "name" {
		t.Fatalf("unexpected validation error: %+v", ve)
	}
}

func TestValidateRejectsFlagBitOutOfRange(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("broken#1 flags:# name:flags.32?string = Broken;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := s.Validate(); err == nil || !strings.Contains(err.Error(), "outside 0..31") {
		t.Fatalf("expected flag range error, got %v", err)
	}
}

func TestValidateRejectsDuplicateTag(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("a#10 = A;\nb#10 = B;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = s.Validate()
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Name != "b" {
		t.Fatalf("expected duplicate tag error on b, got %v", err)
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("a#10 peer:InputPeer = A;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := s.Validate(); err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestValidateRejectsUnconditionalTrue(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("a#10 yes:true = A;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for unconditional true")
	}
}

func TestParseRejectsMalformedLines(t *testing.T) {
	testlog.Start(t)
	cases := []string{
		"a#zz = A;",
		"a#10 x = A;",
		"a#10 x:int",
		"a#10 {X:Type} x:!X = A;",
		"a#10 x:int = Vector<int>;",
	}
	for _, src := range cases {
		if _, err := ParseString(src); err == nil {
			t.Fatalf("expected parse error for %q", src)
		}
	}
}

func TestParseFunctionsAcceptVectorAndGenericSignatures(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString(`inputUserSelf#f7c1b13f = InputUser;
---functions---
users.getUsers#0d91a548 id:Vector<InputUser> = Vector<User>;
invokeWithLayer#da9b0d0d {X:Type} layer:int query:!X = X;
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s.Functions) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(s.Functions))
	}
	get := s.Functions[0]
	if get.Result != "Vector<User>" || get.Params[0].Type.String() != "Vector<InputUser>" {
		t.Fatalf("unexpected users.getUsers: %+v", get)
	}
	invoke := s.Functions[1]
	if invoke.Tag != 0xda9b0d0d || len(invoke.Params) != 2 || invoke.Result != "X" {
		t.Fatalf("unexpected invokeWithLayer: %+v", invoke)
	}
	if q := invoke.Params[1].Type; q.Kind != KindTypeParam || q.String() != "!X" {
		t.Fatalf("query should be an opaque type parameter, got %+v", q)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if _, err := ParseString("---functions---\nusers.getUsers#0d91a548 id:Vector<int> = Vector<int>;"); err != nil {
		t.Fatalf("vector result: %v", err)
	}
	if _, err := ParseString("---functions---\nf#10 q:!X = X;"); err == nil {
		t.Fatalf("expected error for undeclared type parameter")
	}
}

func TestValidateRejectsVectorOfZeroFieldBareConstructor(t *testing.T) {
	testlog.Start(t)
	s, err := ParseString("marker#10 = Marker;\nholder#20 items:Vector<marker> = Holder;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	err = s.Validate()
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Name != "holder" || ve.Field != "items" {
		t.Fatalf("expected validation error on holder.items, got %v", err)
	}
	if !strings.Contains(ve.Reason, "zero-field bare constructor") {
		t.Fatalf("unexpected reason %q", ve.Reason)
	}

	s, err = ParseString("marker#10 = Marker;\nholder#20 items:Vector<Marker> = Holder;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("boxed vector of zero-field constructor must validate: %v", err)
	}
}
