package jsonpath_test

import (
	"fmt"
	"log"

	"github.com/shapestone/jsondom/pkg/jsonpath"
)

// Example demonstrates a multi-step path into a nested document tree.
func Example() {
	data := map[string]interface{}{
		"catalog": map[string]interface{}{
			"documents": []interface{}{
				map[string]interface{}{
					"format": "schema",
					"owner":  "Nigel Rees",
					"title":  "Sayings of the Century",
					"sizeKB": 8.95,
				},
				map[string]interface{}{
					"format": "manifest",
					"owner":  "Evelyn Waugh",
					"title":  "Sword of Honour",
					"sizeKB": 12.99,
				},
			},
		},
	}

	expr, err := jsonpath.ParseString("$.catalog.documents[*].owner")
	if err != nil {
		log.Fatal(err)
	}

	results := expr.Get(data)
	for _, owner := range results {
		fmt.Println(owner)
	}
	// Output:
	// Nigel Rees
	// Evelyn Waugh
}

// Example_childSelector demonstrates a single child property lookup.
func Example_childSelector() {
	data := map[string]interface{}{
		"document": map[string]interface{}{
			"title":   "config.json",
			"version": 3,
		},
	}

	expr, _ := jsonpath.ParseString("$.document.title")
	results := expr.Get(data)
	fmt.Println(results[0])
	// Output: config.json
}

// Example_arrayIndex demonstrates a positional array lookup.
func Example_arrayIndex() {
	data := map[string]interface{}{
		"tags": []interface{}{"draft", "reviewed", "published"},
	}

	expr, _ := jsonpath.ParseString("$.tags[1]")
	results := expr.Get(data)
	fmt.Println(results[0])
	// Output: reviewed
}

// Example_wildcard demonstrates a wildcard over an array.
func Example_wildcard() {
	data := map[string]interface{}{
		"tags": []interface{}{"draft", "reviewed", "published"},
	}

	expr, _ := jsonpath.ParseString("$.tags[*]")
	results := expr.Get(data)
	for _, tag := range results {
		fmt.Println(tag)
	}
	// Output:
	// draft
	// reviewed
	// published
}

// Example_recursiveDescent demonstrates collecting a field at any depth.
func Example_recursiveDescent() {
	data := map[string]interface{}{
		"fields": []interface{}{
			map[string]interface{}{
				"name":   "id",
				"sizeKB": 8.95,
			},
			map[string]interface{}{
				"name":   "payload",
				"sizeKB": 12.99,
			},
			map[string]interface{}{
				"name":   "checksum",
				"sizeKB": 19.95,
			},
		},
	}

	expr, _ := jsonpath.ParseString("$..sizeKB")
	results := expr.Get(data)
	for _, size := range results {
		fmt.Println(size)
	}
	// Output:
	// 8.95
	// 12.99
	// 19.95
}

// Example_arraySlice demonstrates a bounded array slice.
func Example_arraySlice() {
	data := []interface{}{"a", "b", "c", "d", "e"}

	expr, _ := jsonpath.ParseString("$[1:4]")
	results := expr.Get(data)
	for _, item := range results {
		fmt.Println(item)
	}
	// Output:
	// b
	// c
	// d
}
