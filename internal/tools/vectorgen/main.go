// Command vectorgen regenerates the conformance vectors under
// testdata/conformance/ssb-legacy-1 from fixed key seeds. Run from the
// repository root.
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"scuttle.dev/ssbpub/keys"
	"scuttle.dev/ssbpub/ssbpub"
)

type contact struct {
	Type      string `json:"type"`
	Contact   string `json:"contact"`
	Following bool   `json:"following"`
	Blocking  bool   `json:"blocking"`
}

type post struct {
	Type   string  `json:"type"`
	Text   string  `json:"text"`
	Offset float64 `json:"offset"`
}

func mustKeypair(seedByte byte) keys.Keypair {
	kp, err := keys.FromSeed(bytes.Repeat([]byte{seedByte}, 32))
	if err != nil {
		panic(err)
	}
	return kp
}

func write(root, name string, data []byte) {
	if err := os.WriteFile(filepath.Join(root, name), data, 0o644); err != nil {
		panic(err)
	}
}

func main() {
	root := filepath.Join("testdata", "conformance", "ssb-legacy-1")
	if err := os.MkdirAll(root, 0o755); err != nil {
		panic(err)
	}

	author := mustKeypair(0xA1)
	target, err := mustKeypair(0xB2).Author()
	if err != nil {
		panic(err)
	}

	follow := contact{Type: "contact", Contact: target.Sigil(), Following: true}
	unfollow := contact{Type: "contact", Contact: target.Sigil(), Following: false}

	first, firstKey, err := ssbpub.Publish(follow, nil, author.Public, author.Secret, 0)
	if err != nil {
		panic(err)
	}
	second, secondKey, err := ssbpub.Publish(unfollow, first, author.Public, author.Secret, 0)
	if err != nil {
		panic(err)
	}
	// Exercises the escaping-sensitive corners of the signing encoding:
	// literal U+2028/U+2029, \b and \f, negative zero, non-Latin-1 text.
	tricky := post{
		Type:   "post",
		Text:   "line\u2028sep\u2029 \b\f café €5 😀",
		Offset: math.Copysign(0, -1),
	}
	third, thirdKey, err := ssbpub.Publish(tricky, second, author.Public, author.Secret, 0)
	if err != nil {
		panic(err)
	}
	wrapped, _, err := ssbpub.PublishWith(follow, nil, author.Public, author.Secret, 0,
		ssbpub.Options{Shape: ssbpub.ShapeKeyValue})
	if err != nil {
		panic(err)
	}

	write(root, "contact_1.value.json", first)
	write(root, "contact_1.key", []byte(firstKey.Sigil()+"\n"))
	write(root, "contact_2.value.json", second)
	write(root, "contact_2.key", []byte(secondKey.Sigil()+"\n"))
	write(root, "post_3.value.json", third)
	write(root, "post_3.key", []byte(thirdKey.Sigil()+"\n"))
	write(root, "contact_1.keyvalue.json", wrapped)

	fmt.Println(firstKey.Sigil())
	fmt.Println(secondKey.Sigil())
	fmt.Println(thirdKey.Sigil())
}
