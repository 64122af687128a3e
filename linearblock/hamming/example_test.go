package hamming

import (
	"errors"
	"fmt"
)

func ExampleEncode() {
	enc, err := Encode("1011001")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("r:", enc.R)
	fmt.Println("arranged:", enc.Arranged)
	fmt.Println("codeword:", enc.Codeword)
	for _, step := range enc.Steps {
		fmt.Printf("P%v covers %v -> %v\n", step.Position, step.Covered, step.Parity)
	}
	//Output:
	// r: 4
	// arranged: 10101000100
	// codeword: 10101001110
	// P1 covers [1 3 5 7 9 11] -> 0
	// P2 covers [2 3 6 7 10 11] -> 1
	// P4 covers [4 5 6 7] -> 1
	// P8 covers [8 9 10 11] -> 0
}

func ExampleDecode() {
	dec, err := Decode("10101011110", 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("syndrome:", dec.Syndrome)
	fmt.Println("error position:", dec.ErrorPosition)
	fmt.Println("corrected:", dec.Corrected)
	//Output:
	// syndrome: 0101
	// error position: 5
	// corrected: 10101001110
}

func ExampleDecode_uncorrectable() {
	dec, err := Decode("10111000110", 4)
	fmt.Println(errors.Is(err, ErrUncorrectable), dec.ErrorPosition)
	//Output:
	// true 12
}
