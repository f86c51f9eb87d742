package fixture

import "testing"

func TestLoadAndRunSampleFixture(t *testing.T) {
	cases, err := Load("../evm.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("expected at least one case in the sample fixture")
	}

	for _, c := range cases {
		result, err := Run(c)
		if err != nil {
			t.Fatalf("case %q: %v", c.Name, err)
		}
		if diffs := Diff(c, result); len(diffs) > 0 {
			t.Fatalf("case %q mismatched:\n%v", c.Name, diffs)
		}
	}
}

func TestDecodeHexAcceptsOddLengthAndNoPrefix(t *testing.T) {
	b, err := decodeHex("2a")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 1 || b[0] != 0x2a {
		t.Fatalf("decodeHex(2a) = %x, want [0x2a]", b)
	}

	b, err = decodeHex("0x2a")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 1 || b[0] != 0x2a {
		t.Fatalf("decodeHex(0x2a) = %x, want [0x2a]", b)
	}

	b, err = decodeHex("f")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 1 || b[0] != 0x0f {
		t.Fatalf("decodeHex(f) = %x, want [0x0f] (left-padded)", b)
	}
}
