package strcase_test

import (
	"fmt"

	"github.com/jackhp95/util/strcase"
)

func ExampleCamel() {
	fmt.Println(strcase.Camel("background-color"))
	fmt.Println(strcase.Camel("row_index"))
	// Output:
	// backgroundColor
	// rowIndex
}

func ExampleKebab() {
	fmt.Println(strcase.Kebab("backgroundColor"))
	// Output: background-color
}

func ExampleSnake() {
	fmt.Println(strcase.Snake("HTTPServer"))
	// Output: http_server
}
