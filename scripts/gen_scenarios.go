// Command gen_scenarios writes a golden-output fixture (a scenarioGolden
// map; no test in this repository reads it) from the worked examples in
// spec.md §8. Each scenario
// is run as its own `go run .` subprocess against the scenario's script on
// stdin, piped through goimports, and all scenarios run concurrently under
// one context timeout — grounded directly on scripts/gen_vm_expects.go's
// errgroup-coordinated, context-bounded external-process pipeline.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// scenarios mirrors the worked examples of spec.md §8; kept inline since
// this tool is compiled and run standalone (`go run scripts/gen_scenarios.go`)
// outside the root module package.
var scenarios = []struct{ name, script string }{
	{"define-and-call", "#(ds,greet,hello #(cl,who))#(ss,greet,who)#(cl,greet,world)"},
	{"arithmetic", "#(ad,2,3)"},
	{"conditional", "#(eq,a,a,yes,no)"},
	{"boolean", "#(bu,3,5)"},
}

var (
	outPath string
	timeout time.Duration
)

func parseFlags() {
	flag.StringVar(&outPath, "out", "scenarios_golden.go", "output file path")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "generation timeout")
	flag.Parse()
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create %v: %v", outPath, err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	ready := make(chan struct{})

	gofmt := exec.CommandContext(ctx, "goimports")
	fmtIn, err := gofmt.StdinPipe()
	if err != nil {
		log.Fatalf("failed to open goimports stdin: %v", err)
	}
	gofmt.Stdout = out
	gofmt.Stderr = os.Stderr

	eg.Go(func() error {
		defer out.Close()
		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}
		defer fmtIn.Close()
		return run(ctx, fmtIn)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// run evaluates every scenario's script through its own `go run .`
// subprocess, concurrently, and writes the resulting Go source mapping
// scenario name to its golden transcript.
func run(ctx context.Context, out interface{ Write([]byte) (int, error) }) error {
	results := make([]string, len(scenarios))

	eg, ctx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		i, sc := i, sc
		eg.Go(func() error {
			cmd := exec.CommandContext(ctx, "go", "run", ".")
			cmd.Stdin = bytes.NewBufferString(sc.script + "\n")
			var stdout bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				return fmt.Errorf("scenario %s: %w", sc.name, err)
			}
			results[i] = stdout.String()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("package main\n\n")
	buf.WriteString("// Code generated by scripts/gen_scenarios.go. DO NOT EDIT.\n\n")
	buf.WriteString("var scenarioGolden = map[string]string{\n")
	for i, sc := range scenarios {
		fmt.Fprintf(&buf, "\t%q: %q,\n", sc.name, results[i])
	}
	buf.WriteString("}\n")

	if _, err := out.Write(buf.Bytes()); err != nil {
		return err
	}
	return ctx.Err()
}
