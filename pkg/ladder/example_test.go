package ladder_test

import (
	"context"
	"fmt"

	"github.com/ytkachuk12/wordgraph/pkg/ladder"
)

func ExampleDictionary_Find() {
	d := ladder.New([]string{"cat", "cot", "cog", "dog"})

	path, found, err := d.Find(context.Background(), "cat", "dog")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !found {
		fmt.Println("no path found")
		return
	}
	for _, word := range path {
		fmt.Println(word)
	}
	// Output:
	// cat
	// cot
	// cog
	// dog
}

func ExampleDictionary_Find_notFound() {
	// Two isolated words: no intermediate rungs exist.
	d := ladder.New([]string{"cat", "dog"})

	_, found, _ := d.Find(context.Background(), "cat", "dog")
	fmt.Println("found:", found)
	// Output:
	// found: false
}

func ExampleDictionary_Neighbors() {
	d := ladder.New([]string{"cat", "cot", "cog", "bat", "cart"})

	fmt.Println(d.Neighbors("cat"))
	fmt.Println(d.Neighbors("cut")) // query need not be a dictionary word
	// Output:
	// [bat cot]
	// [cat cot]
}
