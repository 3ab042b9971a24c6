package nbt_test

import (
	"fmt"

	"github.com/arloliu/nbt"
	"github.com/arloliu/nbt/payload"
)

func ExampleDecodeJava() {
	data := []byte{
		0x0A, 0x00, 0x0B, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
		0x00,
	}

	root, err := nbt.DecodeJava(data)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(root.Name)
	fmt.Println(root.Payload)
	// Output:
	// hello world
	// {name:"Bananrama"}
}

func ExampleDecodeBedrockNetwork() {
	// Int fields are zig-zag varints: 0x03 is -2, 0xAC 0x02 is 150.
	data := []byte{
		0x0A, 0x00, 0x00,
		0x03, 0x01, 0x00, 'a', 0x03,
		0x03, 0x01, 0x00, 'b', 0xAC, 0x02,
		0x00,
	}

	root, err := nbt.DecodeBedrockNetwork(data)
	if err != nil {
		fmt.Println(err)
		return
	}

	c, _ := root.Compound()
	a, _ := c.Int("a")
	b, _ := c.Int("b")
	fmt.Println(a, b)
	fmt.Println(payload.IsUntyped(payload.EmptyList{}))
	// Output:
	// -2 150
	// true
}
