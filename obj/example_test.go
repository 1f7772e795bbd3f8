package obj_test

import (
	"fmt"
	"sort"

	"github.com/jackhp95/util/obj"
)

func ExampleFlattenDeep() {
	flat := obj.FlattenDeep(map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"address": map[string]any{"city": "London"},
		},
	})
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k, "=", flat[k])
	}
	// Output:
	// user.address.city = London
	// user.name = Alice
}

func ExampleTruthy() {
	fmt.Println(obj.Truthy(""))
	fmt.Println(obj.Truthy("0"))
	fmt.Println(obj.Truthy(0))
	fmt.Println(obj.Truthy([]int{}))
	// Output:
	// false
	// true
	// false
	// false
}

func ExampleSafe() {
	v, err := obj.Safe(func() int { return 21 * 2 })
	fmt.Println(v, err)

	_, err = obj.Safe(func() int { panic("division by zero") })
	fmt.Println(err)
	// Output:
	// 42 <nil>
	// recovered from panic: division by zero
}
