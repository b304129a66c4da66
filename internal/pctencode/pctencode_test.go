package pctencode

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"hello",
		"hello world",
		"a/b?c#d",
		"héllo",
		"",
		"100% sure",
	}
	for _, in := range cases {
		enc := Encode(in, Fragment)
		dec := Decode(enc)
		if dec != in {
			t.Errorf("round trip failed: Encode(%q)=%q Decode=%q", in, enc, dec)
		}
	}
}

func TestDecodeMalformedPassesThrough(t *testing.T) {
	cases := map[string]string{
		"100%":   "100%",
		"100%2":  "100%2",
		"100%2Z": "100%2Z",
		"100%2A": "100*",
	}
	for in, want := range cases {
		if got := Decode(in); got != want {
			t.Errorf("Decode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeUppercaseHex(t *testing.T) {
	got := Encode("\xff", C0Control)
	if got != "%FF" {
		t.Errorf("Encode(0xff) = %q, want %%FF", got)
	}
}

func TestComponentIsUserinfoPlusSubdelims(t *testing.T) {
	for _, c := range []byte("$%&+,") {
		if Component(c) {
			t.Errorf("Component(%q) should be escaped", c)
		}
		if !Userinfo(c) {
			t.Errorf("Userinfo(%q) should be left alone", c)
		}
	}
}

func TestView(t *testing.T) {
	v := NewView("a%20b")
	if got := v.String(); got != "a b" {
		t.Errorf("View.String() = %q, want %q", got, "a b")
	}
	if got := v.Len(); got != 3 {
		t.Errorf("View.Len() = %d, want 3", got)
	}
}

func TestDecodeStrict(t *testing.T) {
	if dec, _, ok := DecodeStrict("100%2A"); !ok || dec != "100*" {
		t.Errorf("DecodeStrict(100%%2A) = %q, %v, want 100*, true", dec, ok)
	}
	cases := []string{"100%", "100%2", "100%2Z"}
	for _, in := range cases {
		if _, _, ok := DecodeStrict(in); ok {
			t.Errorf("DecodeStrict(%q) should reject a malformed escape", in)
		}
	}
}

func TestFormDecodeStrict(t *testing.T) {
	if dec, _, ok := FormDecodeStrict("a+b%26c"); !ok || dec != "a b&c" {
		t.Errorf("FormDecodeStrict = %q, %v, want \"a b&c\", true", dec, ok)
	}
	if _, _, ok := FormDecodeStrict("a+b%2"); ok {
		t.Errorf("FormDecodeStrict should reject a truncated escape")
	}
}

func TestFormEncodeDecode(t *testing.T) {
	in := "a b+c"
	enc := FormEncode(in)
	if enc != "a+b%2Bc" {
		t.Errorf("FormEncode(%q) = %q", in, enc)
	}
	if dec := FormDecode(enc); dec != in {
		t.Errorf("FormDecode(%q) = %q, want %q", enc, dec, in)
	}
}
