package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"glplayground/internal/app"
	"glplayground/internal/compute"
	"glplayground/internal/config"
	"glplayground/internal/kernel"
	"glplayground/internal/window"
)

func init() {
	runtime.LockOSThread()
}

var demos = map[string]func() error{
	"hello": hello,
	"add":   add,
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [hello|add]\n", os.Args[0])
	}
	flag.Parse()

	name := "hello"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	demo, ok := demos[name]
	if !ok {
		flag.Usage()
		os.Exit(1)
	}

	lc := app.Start("compute")

	if err := window.Init(); err != nil {
		lc.Fatal(err)
	}
	lc.Defer(window.Terminate)

	if _, err := window.New(config.Headless("compute")); err != nil {
		lc.Fatal(err)
	}
	if err := compute.Init(); err != nil {
		lc.Fatal(err)
	}

	if err := demo(); err != nil {
		lc.Fatal(err)
	}
	lc.Exit()
}

// hello adds per-character offsets to "Hello " on the GPU, giving "World!"
func hello() error {
	str, offsets := kernel.HelloInput()

	strBuf := compute.NewIntBuffer(kernel.HelloStringBinding, str)
	defer strBuf.Delete()
	offBuf := compute.NewIntBuffer(kernel.HelloOffsetBinding, offsets)
	defer offBuf.Delete()

	p, err := compute.NewProgram(kernel.HelloSource)
	if err != nil {
		return err
	}
	defer p.Delete()

	if err := p.Dispatch(kernel.WorkGroups(kernel.HelloLength, kernel.HelloLocalSize), 1, 1); err != nil {
		return err
	}

	out, err := strBuf.ReadInts()
	if err != nil {
		return err
	}
	got := kernel.UnpackString(out)
	if want := kernel.UnpackString(kernel.AddHost(str, offsets)); got != want {
		return fmt.Errorf("compute result %q, expected %q", got, want)
	}
	fmt.Println(kernel.UnpackString(str) + got)
	return nil
}

// add sums two float arrays element-wise and checks the result on the host
func add() error {
	a := kernel.Sequence(kernel.AddLength)
	b := kernel.Sequence(kernel.AddLength)

	in0 := compute.NewFloatBuffer(kernel.AddInput0Binding, a)
	defer in0.Delete()
	in1 := compute.NewFloatBuffer(kernel.AddInput1Binding, b)
	defer in1.Delete()
	outBuf := compute.NewEmptyBuffer(kernel.AddOutputBinding, kernel.AddLength*4)
	defer outBuf.Delete()

	p, err := compute.NewProgram(kernel.AddSource)
	if err != nil {
		return err
	}
	defer p.Delete()

	groups := kernel.WorkGroups(kernel.AddLength, kernel.AddLocalSize)
	log.Printf("dispatching %d work groups of %d", groups, kernel.AddLocalSize)
	if err := p.Dispatch(groups, 1, 1); err != nil {
		return err
	}

	out, err := outBuf.ReadFloats()
	if err != nil {
		return err
	}
	if err := kernel.VerifySum(a, b, out, kernel.AddTolerance); err != nil {
		return err
	}
	fmt.Println("verification PASSED")
	return nil
}
