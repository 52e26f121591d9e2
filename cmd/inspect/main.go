// inspect dumps the raw contents of a chatkv database for debugging:
// every key under a prefix, optionally with its JSON value.
package main

import (
	"flag"
	"fmt"
	"os"

	"chatkv/pkg/store"
)

func main() {
	var (
		path   string
		prefix string
		values bool
	)
	flag.StringVar(&path, "db", "", "path to the Pebble database")
	flag.StringVar(&prefix, "prefix", "", "key prefix to dump (empty for everything)")
	flag.BoolVar(&values, "values", false, "print values next to keys")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "--db required")
		os.Exit(2)
	}

	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer st.Close()

	entries, err := st.ScanPrefix(prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan: %v\n", err)
		os.Exit(1)
	}
	for _, e := range entries {
		if values {
			fmt.Printf("%s\t%s\n", e.Key, e.Value)
		} else {
			fmt.Println(e.Key)
		}
	}
	fmt.Fprintf(os.Stderr, "%d entries\n", len(entries))
}
