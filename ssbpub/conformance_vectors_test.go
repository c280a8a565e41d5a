package ssbpub_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scuttle.dev/ssbpub/ssbpub"
	"scuttle.dev/ssbpub/validate"
)

func vectorRoot() string {
	return filepath.Join("..", "testdata", "conformance", "ssb-legacy-1")
}

func readVector(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(vectorRoot(), name))
	if err != nil {
		t.Fatalf("read vector %s: %v", name, err)
	}
	return b
}

func readVectorKey(t *testing.T, name string) string {
	t.Helper()
	key := strings.TrimSpace(string(readVector(t, name)))
	if key == "" {
		t.Fatalf("empty expected key in %s", name)
	}
	return key
}

func TestConformanceVectors_IdentifiersAndSignatures(t *testing.T) {
	first := readVector(t, "contact_1.value.json")
	second := readVector(t, "contact_2.value.json")
	third := readVector(t, "post_3.value.json")
	firstKey := readVectorKey(t, "contact_1.key")
	secondKey := readVectorKey(t, "contact_2.key")
	thirdKey := readVectorKey(t, "post_3.key")

	got1, err := ssbpub.MessageID(first)
	if err != nil {
		t.Fatalf("MessageID(first): %v", err)
	}
	if got1.Sigil() != firstKey {
		t.Errorf("first identifier = %q, want %q", got1.Sigil(), firstKey)
	}
	got2, err := ssbpub.MessageID(second)
	if err != nil {
		t.Fatalf("MessageID(second): %v", err)
	}
	if got2.Sigil() != secondKey {
		t.Errorf("second identifier = %q, want %q", got2.Sigil(), secondKey)
	}

	if err := validate.VerifySignature(first); err != nil {
		t.Errorf("VerifySignature(first): %v", err)
	}
	if err := validate.VerifySignature(second); err != nil {
		t.Errorf("VerifySignature(second): %v", err)
	}
	if err := validate.CheckHashChain(first, nil); err != nil {
		t.Errorf("CheckHashChain(first): %v", err)
	}
	if err := validate.CheckHashChain(second, first); err != nil {
		t.Errorf("CheckHashChain(second, first): %v", err)
	}

	// The third vector's content has literal line separators, short
	// control escapes and non-Latin-1 text; its identifier covers the
	// transcoded bytes of all of them.
	got3, err := ssbpub.MessageID(third)
	if err != nil {
		t.Fatalf("MessageID(third): %v", err)
	}
	if got3.Sigil() != thirdKey {
		t.Errorf("third identifier = %q, want %q", got3.Sigil(), thirdKey)
	}
	if err := validate.VerifySignature(third); err != nil {
		t.Errorf("VerifySignature(third): %v", err)
	}
	if err := validate.CheckHashChain(third, second); err != nil {
		t.Errorf("CheckHashChain(third, second): %v", err)
	}
}

func TestConformanceVectors_RepublishByteExact(t *testing.T) {
	kp := mustKeypair(t, 0xA1)

	first, firstKey, err := ssbpub.Publish(testContact(t, true), nil, kp.Public, kp.Secret, 0)
	if err != nil {
		t.Fatalf("Publish first: %v", err)
	}
	wantFirst := readVector(t, "contact_1.value.json")
	if !bytes.Equal(first, wantFirst) {
		t.Fatalf("first entry bytes diverge from vector:\n got %s\nwant %s", first, wantFirst)
	}
	if firstKey.Sigil() != readVectorKey(t, "contact_1.key") {
		t.Fatalf("first identifier diverges from vector")
	}

	second, secondKey, err := ssbpub.Publish(testContact(t, false), first, kp.Public, kp.Secret, 0)
	if err != nil {
		t.Fatalf("Publish second: %v", err)
	}
	wantSecond := readVector(t, "contact_2.value.json")
	if !bytes.Equal(second, wantSecond) {
		t.Fatalf("second entry bytes diverge from vector:\n got %s\nwant %s", second, wantSecond)
	}
	if secondKey.Sigil() != readVectorKey(t, "contact_2.key") {
		t.Fatalf("second identifier diverges from vector")
	}

	third, thirdKey, err := ssbpub.Publish(trickyPost(), second, kp.Public, kp.Secret, 0)
	if err != nil {
		t.Fatalf("Publish third: %v", err)
	}
	wantThird := readVector(t, "post_3.value.json")
	if !bytes.Equal(third, wantThird) {
		t.Fatalf("third entry bytes diverge from vector:\n got %s\nwant %s", third, wantThird)
	}
	if thirdKey.Sigil() != readVectorKey(t, "post_3.key") {
		t.Fatalf("third identifier diverges from vector")
	}
}

func TestConformanceVectors_KeyValueShape(t *testing.T) {
	kp := mustKeypair(t, 0xA1)

	wrapped, _, err := ssbpub.PublishWith(testContact(t, true), nil, kp.Public, kp.Secret, 0,
		ssbpub.Options{Shape: ssbpub.ShapeKeyValue})
	if err != nil {
		t.Fatalf("PublishWith: %v", err)
	}
	want := readVector(t, "contact_1.keyvalue.json")
	if !bytes.Equal(wrapped, want) {
		t.Fatalf("wrapped entry bytes diverge from vector:\n got %s\nwant %s", wrapped, want)
	}
}
