package lib_test

import (
	"fmt"
	"os"

	"github.com/slok/progline/pkg/lib"
)

// Reports the progress of a two-phase job on stdout.
func Example() {
	reporter, err := lib.New(lib.Config{Output: os.Stdout})
	if err != nil {
		panic(err)
	}

	if err := reporter.AddTask(lib.NewTask("Log in")); err != nil {
		panic(err)
	}
	if err := reporter.AddTask(lib.NewTask("Scrape").WithTotal(2)); err != nil {
		panic(err)
	}

	_ = reporter.Start()
	_ = reporter.Finish()

	_ = reporter.Start()
	_ = reporter.Increment(1)
	_ = reporter.Increment(1)
	_ = reporter.Finish()

	// Output:
	// [{"name":"Log in","status":"running"},{"name":"Scrape","status":"pending","total":2}]
	// [{"name":"Scrape","status":"pending","total":2}]
	// [{"name":"Scrape","status":"in_progress","done":0,"total":2}]
	// [{"name":"Scrape","status":"in_progress","done":1,"total":2}]
	// [{"name":"Scrape","status":"in_progress","done":2,"total":2}]
	// []
}

// Marks the current task as failed with a message.
func ExampleReporter_Error() {
	reporter, err := lib.New(lib.Config{Output: os.Stdout})
	if err != nil {
		panic(err)
	}

	_ = reporter.AddTask(lib.NewTask("Download"))
	_ = reporter.Start()
	if err := reporter.Error("connection reset"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// [{"name":"Download","status":"running"}]
	// []
}
