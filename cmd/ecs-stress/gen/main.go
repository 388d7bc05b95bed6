// Command gen emits the stress component and system bank used by ecs-stress.
// Each generated system requires a pair of adjacent component types, so a
// population with random component subsets exercises both the match and the
// skip paths.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/tools/imports"
)

func main() {
	count := flag.Int("components", 16, "Number of stress component types to generate.")
	out := flag.String("out", "components_gen.go", "Output file path.")
	flag.Parse()

	if *count < 2 {
		log.Fatal("need at least 2 component types to form system pairs")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ecs-stress gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package main\n\n")
	fmt.Fprintf(&buf, "import \"github.com/plus3/microecs/ecs\"\n\n")
	fmt.Fprintf(&buf, "const stressComponentCount = %d\n\n", *count)

	for i := 0; i < *count; i++ {
		fmt.Fprintf(&buf, "type StressComp%d struct {\n\tA, B float64\n\tHits int\n}\n\n", i)
	}

	fmt.Fprintf(&buf, "func emplaceStressComponent(e *ecs.Entity, idx int) {\n")
	fmt.Fprintf(&buf, "\tswitch idx %% stressComponentCount {\n")
	for i := 0; i < *count; i++ {
		fmt.Fprintf(&buf, "\tcase %d:\n\t\tecs.Emplace(e, StressComp%d{A: float64(idx), B: %d})\n", i, i, i+1)
	}
	fmt.Fprintf(&buf, "\t}\n}\n\n")

	fmt.Fprintf(&buf, "func newStressSystems() []ecs.Processor {\n\treturn []ecs.Processor{\n")
	for i := 0; i < *count; i++ {
		fmt.Fprintf(&buf, "\t\tnewStressSystem%d(),\n", i)
	}
	fmt.Fprintf(&buf, "\t}\n}\n\n")

	for i := 0; i < *count; i++ {
		j := (i + 1) % *count
		fmt.Fprintf(&buf, "func newStressSystem%d() ecs.Processor {\n", i)
		fmt.Fprintf(&buf, "\treturn ecs.NewSystem(func(e *ecs.Entity, c struct {\n\t\t*StressComp%d\n\t\t*StressComp%d\n\t}) {\n", i, j)
		fmt.Fprintf(&buf, "\t\tc.StressComp%d.A += c.StressComp%d.B\n", i, j)
		fmt.Fprintf(&buf, "\t\tc.StressComp%d.Hits++\n", i)
		fmt.Fprintf(&buf, "\t}).WithName(\"stress-%d-%d\")\n}\n\n", i, j)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("formatting generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d component types)", *out, *count)
}
