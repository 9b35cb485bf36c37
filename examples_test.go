package runeclass_test

import (
	"fmt"

	"github.com/scalecode-solutions/runeclass"
)

func ExampleIsNaturalNumber() {
	fmt.Println(runeclass.IsNaturalNumber("567", runeclass.ASCII))
	fmt.Println(runeclass.IsNaturalNumber("5gd3", runeclass.ASCII))
	// Output: true
	//false
}

func ExampleIsInAlphabet() {
	fmt.Println(runeclass.IsInAlphabet("señor", runeclass.UTF8Binary, runeclass.Spanish))
	fmt.Println(runeclass.IsInAlphabet("señor", runeclass.UTF8Binary, runeclass.English))
	// Output: true
	//false
}

func ExampleIsPunctuationMarkInAlphabet() {
	fmt.Println(runeclass.IsPunctuationMarkInAlphabet(",", runeclass.ASCII, runeclass.English))
	fmt.Println(runeclass.IsPunctuationMarkInAlphabet("¿", runeclass.UTF8Binary, runeclass.Spanish))
	fmt.Println(runeclass.IsPunctuationMarkInAlphabet("¿", runeclass.UTF8Binary, runeclass.French))
	// Output: true
	//true
	//false
}

func ExampleIsUpperCaseInAlphabetAt() {
	upper, err := runeclass.IsUpperCaseInAlphabetAt("aBc", runeclass.ASCII, runeclass.English, 1)
	fmt.Println(upper, err)
	_, err = runeclass.IsUpperCaseInAlphabetAt("aBc", runeclass.ASCII, runeclass.English, 3)
	fmt.Println(err)
	// Output: true <nil>
	//runeclass: index out of range: 3
}

func ExampleLength() {
	n, _ := runeclass.Length("SixValue", runeclass.ASCII)
	fmt.Println(n)
	n, _ = runeclass.Length("été", runeclass.UTF8Binary)
	fmt.Println(n)
	// Output: 8
	//3
}

func ExampleLengthEscaped() {
	n, err := runeclass.LengthEscaped("HealthyYUM2345N", runeclass.ASCII, "YUM", runeclass.EscapeHex, "")
	fmt.Println(n, err)
	n, err = runeclass.LengthEscaped("caf&#233;!", runeclass.ASCII, "&#", runeclass.EscapeDecimal, ";")
	fmt.Println(n, err)
	// Output: 9 <nil>
	//5 <nil>
}

func ExampleUnescape() {
	s, _ := runeclass.Unescape(`caf\u00e9`, runeclass.ASCII, `\u`, runeclass.EscapeHex, "")
	fmt.Println(s)
	// Output: café
}

func ExampleEncode() {
	s, _ := runeclass.Encode("café", runeclass.ISO8859_1)
	fmt.Printf("%q\n", s)
	_, err := runeclass.Encode("café", runeclass.ASCII)
	fmt.Println(err)
	// Output: "caf\xe9"
	//runeclass: character not representable in encoding: U+00E9 at byte 3 in ascii
}

func ExampleStepString() {
	str := "Ça va!"
	var props int
	for len(str) > 0 {
		_, str, props = runeclass.StepString(str, runeclass.UTF8Binary, runeclass.French)
		switch {
		case props&runeclass.MaskUpper != 0:
			fmt.Print("U")
		case props&runeclass.MaskLower != 0:
			fmt.Print("l")
		case props&runeclass.MaskPunct != 0:
			fmt.Print("p")
		default:
			fmt.Print("_")
		}
	}
	fmt.Println()
	// Output: Ul_llp
}

func ExampleStep() {
	b := []byte("A\xe91")
	var (
		c     []byte
		props int
	)
	for len(b) > 0 {
		c, b, props = runeclass.Step(b, runeclass.ISO8859_1, runeclass.Spanish)
		fmt.Printf("%q letter=%t natural=%t\n", c, props&runeclass.MaskLetter != 0, props&runeclass.MaskNatural != 0)
	}
	// Output: "A" letter=true natural=false
	//"\xe9" letter=true natural=false
	//"1" letter=false natural=true
}

func ExampleText() {
	t := runeclass.NewText("Niño", runeclass.UTF8Binary, runeclass.WithLanguage(runeclass.Spanish))
	n, _ := t.Len()
	fmt.Println(n, t.IsInAlphabet(), t.IsLowerCaseInAlphabet())
	lower, _ := t.IsLowerCaseInAlphabetAt(2)
	fmt.Println(lower)
	// Output:
	// 4 true false
	// true
}

func ExampleText_IsUpperCaseInAlphabetAt() {
	t := runeclass.NewText("\xd1and\xfa", runeclass.ISO8859_1, runeclass.WithLanguage(runeclass.Spanish))
	for _, i := range []int{0, 4, 5} {
		fmt.Println(t.IsUpperCaseInAlphabetAt(i))
	}
	// Output:
	// true <nil>
	// false <nil>
	// false runeclass: index out of range: 5
}
