package uuidv4_test

import (
	"fmt"
	"log"

	"github.com/jdziat/uuidv4-go"
)

// This example demonstrates creating a generator and drawing an identifier.
func ExampleNew() {
	gen, err := uuidv4.New()
	if err != nil {
		log.Fatal(err)
	}

	id := gen.Next()
	fmt.Println(id.Valid(), len(id.String()))
	// Output: true 36
}

// This example shows deterministic generation for reproducible runs.
func ExampleWithSeed() {
	a, _ := uuidv4.New(uuidv4.WithSeed(42), uuidv4.WithSoftwareOnly())
	b, _ := uuidv4.New(uuidv4.WithSeed(42), uuidv4.WithSoftwareOnly())

	fmt.Println(a.Next() == b.Next())
	// Output: true
}

// This example plugs a custom engine into the generator.
func ExampleNewGenerator() {
	gen, err := uuidv4.NewGenerator[uint64](uuidv4.NewPCG(7))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(gen.Next().Valid())
	// Output: true
}

func ExampleFromBytes() {
	u, err := uuidv4.FromBytes([]byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(u)
	// Output: 00010203-0405-0607-0809-0a0b0c0d0e0f
}

func ExampleUUID_Compare() {
	low := uuidv4.UUID{0x01}
	high := uuidv4.UUID{0x02}

	fmt.Println(low.Compare(high), low.Compare(low), high.Compare(low))
	// Output: -1 0 1
}
