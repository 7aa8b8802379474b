// Package main provides the CLI entrypoint for vue-class-migrator.
//
// vue-class-migrator rewrites Vue class components (vue-property-decorator
// style) into equivalent options-API declarations:
//   - @Component options are carried over verbatim
//   - @Prop fields become props config with inferred runtime types
//   - initialized fields become the data() method
//   - get/set accessors become computed properties
//
// Each file is one independent transformation; failures abort that file
// only and the remaining files are still processed.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
